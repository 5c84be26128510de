// Package register_feed_usecase subscribes to a new feed and immediately
// pulls its current entries. The subscription is stored first; a fetch
// failure on the initial pull leaves the subscription in place for the
// next refresh to retry.
package register_feed_usecase

import (
	"context"
	"strings"

	"skim/domain"
	"skim/port/feed_fetch_port"
	"skim/port/feed_port"
	"skim/port/refresh_feed_port"
	errs "skim/utils/errors"
	"skim/utils/logger"
	"skim/validation"
)

type RegisterFeedUsecase struct {
	registerGateway  feed_port.RegisterFeedPort
	fetchFeedGateway feed_fetch_port.FetchFeedPort
	ingestGateway    refresh_feed_port.FeedIngestPort
}

func NewRegisterFeedUsecase(
	registerGateway feed_port.RegisterFeedPort,
	fetchFeedGateway feed_fetch_port.FetchFeedPort,
	ingestGateway refresh_feed_port.FeedIngestPort,
) *RegisterFeedUsecase {
	return &RegisterFeedUsecase{
		registerGateway:  registerGateway,
		fetchFeedGateway: fetchFeedGateway,
		ingestGateway:    ingestGateway,
	}
}

// Execute subscribes to feedURL under the given title and ingests the
// feed's current entries. The returned count is how many articles the
// initial pull stored.
func (u *RegisterFeedUsecase) Execute(ctx context.Context, title, feedURL, description string) (*domain.Feed, int, error) {
	title = strings.TrimSpace(title)
	feedURL = strings.TrimSpace(feedURL)

	if title == "" {
		return nil, 0, errs.ValidationError("feed title is required", nil)
	}
	if err := validation.ValidateExternalURL(feedURL); err != nil {
		return nil, 0, errs.ValidationError(err.Error(), map[string]interface{}{"url": feedURL})
	}

	feed, err := u.registerGateway.RegisterFeed(ctx, title, feedURL, description)
	if err != nil {
		return nil, 0, err
	}

	parsed, err := u.fetchFeedGateway.FetchFeed(ctx, feedURL)
	if err != nil {
		logger.SafeWarn("initial pull failed", "feed_id", feed.ID, "url", feedURL, "error", err)
		return feed, 0, nil
	}

	inserted, err := u.ingestGateway.IngestEntries(ctx, feed.ID, parsed.Entries)
	if err != nil {
		logger.SafeWarn("initial ingest failed", "feed_id", feed.ID, "error", err)
		return feed, 0, nil
	}

	logger.SafeInfo("feed registered", "feed_id", feed.ID, "url", feedURL, "new_articles", inserted)

	return feed, inserted, nil
}
