package skim_db

import (
	"context"
	"errors"
	"fmt"

	"skim/utils/logger"
)

const deleteFeedQuery = `DELETE FROM feeds WHERE id = $1`

// DeleteFeed removes a feed; its articles go with it (ON DELETE CASCADE).
// Deleting an unknown id is not an error.
func (r *Repository) DeleteFeed(ctx context.Context, id int64) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	if _, err := r.pool.Exec(ctx, deleteFeedQuery, id); err != nil {
		err = fmt.Errorf("delete feed: %w", err)
		logger.SafeError("failed to delete feed", "feed_id", id, "error", err)
		return err
	}

	logger.SafeInfo("feed deleted", "feed_id", id)
	return nil
}
