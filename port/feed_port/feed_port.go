package feed_port

import (
	"context"

	"skim/domain"
)

type RegisterFeedPort interface {
	RegisterFeed(ctx context.Context, title, url, description string) (*domain.Feed, error)
}

type FetchFeedsPort interface {
	FetchFeeds(ctx context.Context) ([]domain.Feed, error)
	FetchFeedByID(ctx context.Context, id int64) (*domain.Feed, error)
}

type UpdateFeedPort interface {
	UpdateFeed(ctx context.Context, id int64, title, url, description string) error
}

type DeleteFeedPort interface {
	DeleteFeed(ctx context.Context, id int64) error
}
