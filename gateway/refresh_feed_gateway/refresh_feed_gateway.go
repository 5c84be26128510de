// Package refresh_feed_gateway persists the results of a feed refresh:
// ingesting new entries and keeping stored feed metadata aligned with
// what the upstream document declares.
package refresh_feed_gateway

import (
	"context"

	"skim/domain"
	"skim/driver/skim_db"
	errs "skim/utils/errors"
	"skim/utils/logger"
)

type FeedIngestGateway struct {
	db *skim_db.Repository
}

func NewFeedIngestGateway(pool skim_db.DBPool) *FeedIngestGateway {
	return &FeedIngestGateway{db: skim_db.NewRepository(pool)}
}

// IngestEntries stores the entries for feedID inside one transaction and
// returns how many were actually new. Entries already present are skipped
// without error, so re-running a refresh never duplicates articles.
func (g *FeedIngestGateway) IngestEntries(ctx context.Context, feedID int64, entries []domain.FeedEntry) (int, error) {
	inserted, err := g.db.InsertArticles(ctx, feedID, entries)
	if err != nil {
		logger.SafeError("failed to ingest entries", "feed_id", feedID, "error", err)
		return 0, errs.DatabaseError("failed to ingest feed entries", err, map[string]interface{}{"feed_id": feedID})
	}
	return inserted, nil
}

// SyncFeedMetadata updates the stored title and description when the
// upstream document declares them. An upstream document without a title
// leaves the stored metadata alone.
func (g *FeedIngestGateway) SyncFeedMetadata(ctx context.Context, feedID int64, title, description string) error {
	if title == "" {
		return nil
	}

	if err := g.db.UpdateFeedMetadata(ctx, feedID, title, description); err != nil {
		logger.SafeError("failed to sync feed metadata", "feed_id", feedID, "error", err)
		return errs.DatabaseError("failed to sync feed metadata", err, map[string]interface{}{"feed_id": feedID})
	}
	return nil
}
