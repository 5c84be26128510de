// Package feed_gateway adapts the feed persistence driver to the feed
// management ports, translating driver failures into categorized errors.
package feed_gateway

import (
	"context"
	"errors"

	"skim/domain"
	"skim/driver/skim_db"
	errs "skim/utils/errors"
	"skim/utils/logger"
)

type FeedGateway struct {
	db *skim_db.Repository
}

func NewFeedGateway(pool skim_db.DBPool) *FeedGateway {
	return &FeedGateway{db: skim_db.NewRepository(pool)}
}

func (g *FeedGateway) RegisterFeed(ctx context.Context, title, url, description string) (*domain.Feed, error) {
	feed, err := g.db.CreateFeed(ctx, title, url, description)
	if err != nil {
		if errors.Is(err, domain.ErrFeedAlreadyExists) {
			return nil, errs.ConflictError("feed already subscribed", err, map[string]interface{}{"url": url})
		}
		logger.SafeError("failed to register feed", "url", url, "error", err)
		return nil, errs.DatabaseError("failed to register feed", err, map[string]interface{}{"url": url})
	}
	return feed, nil
}

func (g *FeedGateway) FetchFeeds(ctx context.Context) ([]domain.Feed, error) {
	feeds, err := g.db.FetchFeeds(ctx)
	if err != nil {
		logger.SafeError("failed to fetch feeds", "error", err)
		return nil, errs.DatabaseError("failed to fetch feeds", err, nil)
	}
	return feeds, nil
}

func (g *FeedGateway) FetchFeedByID(ctx context.Context, id int64) (*domain.Feed, error) {
	feed, err := g.db.FetchFeedByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFeedNotFound) {
			return nil, errs.NotFoundError("feed not found", map[string]interface{}{"feed_id": id})
		}
		logger.SafeError("failed to fetch feed", "feed_id", id, "error", err)
		return nil, errs.DatabaseError("failed to fetch feed", err, map[string]interface{}{"feed_id": id})
	}
	return feed, nil
}

func (g *FeedGateway) UpdateFeed(ctx context.Context, id int64, title, url, description string) error {
	err := g.db.UpdateFeed(ctx, id, title, url, description)
	if err != nil {
		if errors.Is(err, domain.ErrFeedNotFound) {
			return errs.NotFoundError("feed not found", map[string]interface{}{"feed_id": id})
		}
		if errors.Is(err, domain.ErrFeedAlreadyExists) {
			return errs.ConflictError("another feed already uses this url", err, map[string]interface{}{"url": url})
		}
		logger.SafeError("failed to update feed", "feed_id", id, "error", err)
		return errs.DatabaseError("failed to update feed", err, map[string]interface{}{"feed_id": id})
	}
	return nil
}

// DeleteFeed removes the subscription. Stored articles for the feed go
// with it through the schema's cascade.
func (g *FeedGateway) DeleteFeed(ctx context.Context, id int64) error {
	if err := g.db.DeleteFeed(ctx, id); err != nil {
		logger.SafeError("failed to delete feed", "feed_id", id, "error", err)
		return errs.DatabaseError("failed to delete feed", err, map[string]interface{}{"feed_id": id})
	}
	return nil
}
