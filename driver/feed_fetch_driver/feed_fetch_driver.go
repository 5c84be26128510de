// Package feed_fetch_driver retrieves and parses upstream feed documents.
// gofeed handles the RSS/Atom/JSON feed variants; the driver normalizes the
// result into domain entries so nothing downstream probes optional fields.
package feed_fetch_driver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"skim/domain"
	"skim/utils/logger"
	"skim/utils/rate_limiter"

	"github.com/mmcdole/gofeed"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type FeedFetchDriver struct {
	parser  *gofeed.Parser
	limiter *rate_limiter.HostRateLimiter
}

func NewFeedFetchDriver(timeout time.Duration, limiter *rate_limiter.HostRateLimiter) *FeedFetchDriver {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = browserUserAgent

	return &FeedFetchDriver{
		parser:  parser,
		limiter: limiter,
	}
}

// FetchFeed retrieves the feed document at feedURL and normalizes it.
// Transport and parse failures come back as a single error; the caller
// decides how to classify them.
func (d *FeedFetchDriver) FetchFeed(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	if d.limiter != nil {
		if err := d.limiter.WaitForHost(ctx, feedURL); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	feed, err := d.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		logger.SafeError("failed to parse feed", "url", feedURL, "error", err)
		return nil, fmt.Errorf("parse feed %q: %w", feedURL, err)
	}

	parsed := normalizeFeed(feed)
	logger.SafeInfo("feed fetched", "url", feedURL, "title", parsed.Title, "entries", len(parsed.Entries))

	return parsed, nil
}

func normalizeFeed(feed *gofeed.Feed) *domain.ParsedFeed {
	parsed := &domain.ParsedFeed{
		Title:       feed.Title,
		Description: feed.Description,
	}

	for _, item := range feed.Items {
		// The link is the dedup key; entries without one cannot be stored.
		if item == nil || item.Link == "" {
			continue
		}

		entry := domain.FeedEntry{
			Title:       item.Title,
			Link:        item.Link,
			Content:     entryContent(item),
			Author:      entryAuthor(item),
			PublishedAt: entryPublished(item),
		}
		parsed.Entries = append(parsed.Entries, entry)
	}

	return parsed
}

// entryContent prefers the full content field over the summary.
func entryContent(item *gofeed.Item) string {
	if item.Content != "" {
		return item.Content
	}
	return item.Description
}

func entryAuthor(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	for _, author := range item.Authors {
		if author != nil && author.Name != "" {
			return author.Name
		}
	}
	return ""
}

// entryPublished resolves the published timestamp from the candidate date
// fields in order; first present wins, absent dates stay nil.
func entryPublished(item *gofeed.Item) *time.Time {
	for _, candidate := range []*time.Time{item.PublishedParsed, item.UpdatedParsed} {
		if candidate != nil {
			t := *candidate
			return &t
		}
	}
	return nil
}
