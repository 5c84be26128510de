package skim_db

import (
	"context"
	"errors"
	"fmt"

	"skim/domain"
	"skim/utils/logger"
)

const updateFullContentQuery = `UPDATE articles SET full_content = $1 WHERE id = $2`

// StoreFullContent persists an extracted article body. The stored value is
// only ever replaced by an explicit new store; a failed extraction never
// reaches this method.
func (r *Repository) StoreFullContent(ctx context.Context, id int64, fullContent string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tag, err := r.pool.Exec(ctx, updateFullContentQuery, fullContent, id)
	if err != nil {
		err = fmt.Errorf("store full content: %w", err)
		logger.SafeError("failed to store full content", "article_id", id, "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	return nil
}
