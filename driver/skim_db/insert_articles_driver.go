package skim_db

import (
	"context"
	"errors"
	"fmt"

	"skim/domain"
	"skim/utils/logger"
)

const insertArticleQuery = `
	INSERT INTO articles (feed_id, title, url, content, author, published_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (url) DO NOTHING
`

// InsertArticles stores new entries for a feed inside a single transaction
// and returns how many were actually inserted. Entries whose URL already
// exists are skipped, so re-running a refresh never duplicates articles.
// A failure rolls back the whole batch.
func (r *Repository) InsertArticles(ctx context.Context, feedID int64, entries []domain.FeedEntry) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin insert articles: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	inserted := 0
	for _, entry := range entries {
		tag, err := tx.Exec(ctx, insertArticleQuery,
			feedID,
			entry.Title,
			entry.Link,
			nullableString(entry.Content),
			nullableString(entry.Author),
			entry.PublishedAt,
		)
		if err != nil {
			err = fmt.Errorf("insert article %q: %w", entry.Link, err)
			logger.SafeError("failed to insert article", "feed_id", feedID, "url", entry.Link, "error", err)
			return 0, err
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit insert articles: %w", err)
	}

	logger.SafeInfo("articles ingested", "feed_id", feedID, "inserted", inserted, "seen", len(entries))
	return inserted, nil
}
