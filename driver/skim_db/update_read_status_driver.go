package skim_db

import (
	"context"
	"errors"
	"fmt"

	"skim/domain"
	"skim/utils/logger"
)

const updateReadStatusQuery = `UPDATE articles SET read = $1 WHERE id = $2`

func (r *Repository) MarkArticleRead(ctx context.Context, id int64, read bool) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tag, err := r.pool.Exec(ctx, updateReadStatusQuery, read, id)
	if err != nil {
		err = fmt.Errorf("mark article read: %w", err)
		logger.SafeError("failed to update read status", "article_id", id, "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	return nil
}
