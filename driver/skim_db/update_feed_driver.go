package skim_db

import (
	"context"
	"errors"
	"fmt"

	"skim/domain"
	"skim/utils/logger"
)

const updateFeedQuery = `
	UPDATE feeds
	SET title = $1, url = $2, description = $3, last_updated = now()
	WHERE id = $4
`

// UpdateFeed replaces a feed's subscription details.
func (r *Repository) UpdateFeed(ctx context.Context, id int64, title, url, description string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tag, err := r.pool.Exec(ctx, updateFeedQuery, title, url, nullableString(description), id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFeedAlreadyExists
		}
		err = fmt.Errorf("update feed: %w", err)
		logger.SafeError("failed to update feed", "feed_id", id, "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}

	return nil
}

const updateFeedMetadataQuery = `
	UPDATE feeds
	SET title = $1, description = $2, last_updated = now()
	WHERE id = $3
`

// UpdateFeedMetadata records upstream title/description drift discovered
// during a refresh; the subscription URL never changes here.
func (r *Repository) UpdateFeedMetadata(ctx context.Context, id int64, title, description string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	if _, err := r.pool.Exec(ctx, updateFeedMetadataQuery, title, nullableString(description), id); err != nil {
		err = fmt.Errorf("update feed metadata: %w", err)
		logger.SafeError("failed to update feed metadata", "feed_id", id, "error", err)
		return err
	}

	return nil
}
