package skim_db

import (
	"context"
	"errors"
	"fmt"

	"skim/domain"
	"skim/utils/logger"

	"github.com/jackc/pgx/v5"
)

const fetchFeedsQuery = `
	SELECT id, title, url, description, last_updated
	FROM feeds
	ORDER BY title
`

func (r *Repository) FetchFeeds(ctx context.Context) ([]domain.Feed, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, fetchFeedsQuery)
	if err != nil {
		err = fmt.Errorf("fetch feeds: %w", err)
		logger.SafeError("failed to fetch feeds", "error", err)
		return nil, err
	}
	defer rows.Close()

	feeds := make([]domain.Feed, 0)
	for rows.Next() {
		var feed domain.Feed
		var description *string
		if err := rows.Scan(&feed.ID, &feed.Title, &feed.URL, &description, &feed.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan feed: %w", err)
		}
		feed.Description = stringOrEmpty(description)
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feeds: %w", err)
	}

	return feeds, nil
}

const fetchFeedByIDQuery = `
	SELECT id, title, url, description, last_updated
	FROM feeds
	WHERE id = $1
`

func (r *Repository) FetchFeedByID(ctx context.Context, id int64) (*domain.Feed, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var feed domain.Feed
	var description *string
	err := r.pool.QueryRow(ctx, fetchFeedByIDQuery, id).
		Scan(&feed.ID, &feed.Title, &feed.URL, &description, &feed.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeedNotFound
		}
		err = fmt.Errorf("fetch feed by id: %w", err)
		logger.SafeError("failed to fetch feed", "feed_id", id, "error", err)
		return nil, err
	}
	feed.Description = stringOrEmpty(description)

	return &feed, nil
}
