// Package fetch_feed_gateway adapts the outbound feed fetcher to the
// fetch feed port.
package fetch_feed_gateway

import (
	"context"
	"errors"

	"skim/domain"
	"skim/driver/feed_fetch_driver"
	errs "skim/utils/errors"
)

type FetchFeedGateway struct {
	fetcher *feed_fetch_driver.FeedFetchDriver
}

func NewFetchFeedGateway(fetcher *feed_fetch_driver.FeedFetchDriver) *FetchFeedGateway {
	return &FetchFeedGateway{fetcher: fetcher}
}

func (g *FetchFeedGateway) FetchFeed(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	if g.fetcher == nil {
		return nil, errors.New("feed fetcher not available")
	}

	parsed, err := g.fetcher.FetchFeed(ctx, feedURL)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.TimeoutError("feed fetch timed out", err, map[string]interface{}{"feed_url": feedURL})
		}
		return nil, errs.FetchError("failed to fetch feed", err, map[string]interface{}{"feed_url": feedURL})
	}

	return parsed, nil
}
