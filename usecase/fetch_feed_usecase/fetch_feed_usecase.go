// Package fetch_feed_usecase lists subscribed feeds.
package fetch_feed_usecase

import (
	"context"

	"skim/domain"
	"skim/port/feed_port"
)

type FetchFeedsUsecase struct {
	fetchGateway feed_port.FetchFeedsPort
}

func NewFetchFeedsUsecase(fetchGateway feed_port.FetchFeedsPort) *FetchFeedsUsecase {
	return &FetchFeedsUsecase{fetchGateway: fetchGateway}
}

func (u *FetchFeedsUsecase) Execute(ctx context.Context) ([]domain.Feed, error) {
	return u.fetchGateway.FetchFeeds(ctx)
}

func (u *FetchFeedsUsecase) ExecuteByID(ctx context.Context, id int64) (*domain.Feed, error) {
	return u.fetchGateway.FetchFeedByID(ctx, id)
}
