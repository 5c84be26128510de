// Package delete_feed_usecase removes a subscription and its stored
// articles.
package delete_feed_usecase

import (
	"context"

	"skim/port/feed_port"
	"skim/utils/logger"
)

type DeleteFeedUsecase struct {
	deleteGateway feed_port.DeleteFeedPort
}

func NewDeleteFeedUsecase(deleteGateway feed_port.DeleteFeedPort) *DeleteFeedUsecase {
	return &DeleteFeedUsecase{deleteGateway: deleteGateway}
}

func (u *DeleteFeedUsecase) Execute(ctx context.Context, id int64) error {
	if err := u.deleteGateway.DeleteFeed(ctx, id); err != nil {
		return err
	}

	logger.SafeInfo("feed deleted", "feed_id", id)
	return nil
}
