// Package refresh_feed_usecase pulls new entries for subscribed feeds.
// Refreshes of distinct feeds may run concurrently; refreshes of the same
// feed are serialized through a per-feed lock so overlapping requests never
// race on the same subscription.
package refresh_feed_usecase

import (
	"context"
	"sync"

	"skim/domain"
	"skim/port/feed_fetch_port"
	"skim/port/feed_port"
	"skim/port/refresh_feed_port"
	"skim/utils/logger"
)

// maxConcurrentRefreshes bounds how many feeds a bulk refresh pulls at
// once so a large subscription list does not open that many sockets.
const maxConcurrentRefreshes = 4

type RefreshFeedsUsecase struct {
	fetchFeedsGateway feed_port.FetchFeedsPort
	fetchFeedGateway  feed_fetch_port.FetchFeedPort
	ingestGateway     refresh_feed_port.FeedIngestPort

	mu        sync.Mutex
	feedLocks map[int64]*sync.Mutex
}

func NewRefreshFeedsUsecase(
	fetchFeedsGateway feed_port.FetchFeedsPort,
	fetchFeedGateway feed_fetch_port.FetchFeedPort,
	ingestGateway refresh_feed_port.FeedIngestPort,
) *RefreshFeedsUsecase {
	return &RefreshFeedsUsecase{
		fetchFeedsGateway: fetchFeedsGateway,
		fetchFeedGateway:  fetchFeedGateway,
		ingestGateway:     ingestGateway,
		feedLocks:         make(map[int64]*sync.Mutex),
	}
}

// RefreshOne pulls the latest entries for a single feed.
func (u *RefreshFeedsUsecase) RefreshOne(ctx context.Context, feedID int64) (*domain.RefreshResult, error) {
	feed, err := u.fetchFeedsGateway.FetchFeedByID(ctx, feedID)
	if err != nil {
		return nil, err
	}

	result := u.refresh(ctx, feed)
	if result.Err != nil {
		return nil, result.Err
	}
	return &result, nil
}

// RefreshAll pulls the latest entries for every subscribed feed. A feed
// that fails to fetch or ingest is reported in its result and never stops
// the others. Results come back in the stored feed order.
func (u *RefreshFeedsUsecase) RefreshAll(ctx context.Context) ([]domain.RefreshResult, error) {
	feeds, err := u.fetchFeedsGateway.FetchFeeds(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.RefreshResult, len(feeds))
	sem := make(chan struct{}, maxConcurrentRefreshes)
	var wg sync.WaitGroup

	for i, feed := range feeds {
		wg.Add(1)
		go func(i int, feed domain.Feed) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = u.refresh(ctx, &feed)
		}(i, feed)
	}
	wg.Wait()

	return results, nil
}

func (u *RefreshFeedsUsecase) refresh(ctx context.Context, feed *domain.Feed) domain.RefreshResult {
	lock := u.lockForFeed(feed.ID)
	lock.Lock()
	defer lock.Unlock()

	result := domain.RefreshResult{FeedID: feed.ID, FeedURL: feed.URL}

	parsed, err := u.fetchFeedGateway.FetchFeed(ctx, feed.URL)
	if err != nil {
		logger.SafeWarn("feed refresh failed", "feed_id", feed.ID, "url", feed.URL, "error", err)
		result.Err = err
		return result
	}

	inserted, err := u.ingestGateway.IngestEntries(ctx, feed.ID, parsed.Entries)
	if err != nil {
		result.Err = err
		return result
	}
	result.NewArticles = inserted

	// Upstream metadata occasionally drifts; follow it. A document that
	// omits its description keeps the stored one.
	description := parsed.Description
	if description == "" {
		description = feed.Description
	}
	if parsed.Title != feed.Title || description != feed.Description {
		if err := u.ingestGateway.SyncFeedMetadata(ctx, feed.ID, parsed.Title, description); err != nil {
			logger.SafeWarn("metadata sync failed", "feed_id", feed.ID, "error", err)
		}
	}

	logger.SafeInfo("feed refreshed", "feed_id", feed.ID, "new_articles", inserted)

	return result
}

func (u *RefreshFeedsUsecase) lockForFeed(feedID int64) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()

	lock, ok := u.feedLocks[feedID]
	if !ok {
		lock = &sync.Mutex{}
		u.feedLocks[feedID] = lock
	}
	return lock
}
