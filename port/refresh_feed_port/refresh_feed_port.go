package refresh_feed_port

import (
	"context"

	"skim/domain"
)

// FeedIngestPort persists parsed feed entries and keeps stored feed
// metadata in step with what the upstream document declares.
type FeedIngestPort interface {
	IngestEntries(ctx context.Context, feedID int64, entries []domain.FeedEntry) (int, error)
	SyncFeedMetadata(ctx context.Context, feedID int64, title, description string) error
}
