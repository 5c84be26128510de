// Package update_feed_usecase edits a subscription's stored fields.
package update_feed_usecase

import (
	"context"
	"strings"

	"skim/port/feed_port"
	errs "skim/utils/errors"
	"skim/validation"
)

type UpdateFeedUsecase struct {
	updateGateway feed_port.UpdateFeedPort
}

func NewUpdateFeedUsecase(updateGateway feed_port.UpdateFeedPort) *UpdateFeedUsecase {
	return &UpdateFeedUsecase{updateGateway: updateGateway}
}

func (u *UpdateFeedUsecase) Execute(ctx context.Context, id int64, title, feedURL, description string) error {
	title = strings.TrimSpace(title)
	feedURL = strings.TrimSpace(feedURL)

	if title == "" {
		return errs.ValidationError("feed title is required", nil)
	}

	if err := validation.ValidateExternalURL(feedURL); err != nil {
		return errs.ValidationError(err.Error(), map[string]interface{}{"url": feedURL})
	}

	return u.updateGateway.UpdateFeed(ctx, id, title, feedURL, description)
}
