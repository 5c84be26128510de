package skim_db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skim/domain"
	"skim/utils/logger"
)

const createFeedQuery = `
	INSERT INTO feeds (title, url, description)
	VALUES ($1, $2, $3)
	RETURNING id, last_updated
`

// CreateFeed inserts a new feed subscription. A duplicate URL yields
// domain.ErrFeedAlreadyExists.
func (r *Repository) CreateFeed(ctx context.Context, title, url, description string) (*domain.Feed, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	feed := domain.Feed{
		Title:       strings.TrimSpace(title),
		URL:         strings.TrimSpace(url),
		Description: description,
	}

	err := r.pool.QueryRow(ctx, createFeedQuery, feed.Title, feed.URL, nullableString(feed.Description)).
		Scan(&feed.ID, &feed.LastUpdated)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrFeedAlreadyExists
		}
		err = fmt.Errorf("create feed: %w", err)
		logger.SafeError("failed to create feed", "url", feed.URL, "error", err)
		return nil, err
	}

	logger.SafeInfo("feed created", "feed_id", feed.ID, "url", feed.URL)
	return &feed, nil
}
