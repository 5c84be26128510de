package feed_fetch_port

import (
	"context"

	"skim/domain"
)

// FetchFeedPort retrieves and parses an upstream feed document.
type FetchFeedPort interface {
	FetchFeed(ctx context.Context, feedURL string) (*domain.ParsedFeed, error)
}
