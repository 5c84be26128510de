package domain

import "time"

// Feed is a subscribed external article source.
type Feed struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// ParsedFeed is the normalized form of an upstream feed document,
// independent of whether the source was RSS, Atom or JSON feed.
type ParsedFeed struct {
	Title       string
	Description string
	Entries     []FeedEntry
}

// FeedEntry is one normalized item from a parsed feed document.
// Optional fields are zero-valued when the source omits them; PublishedAt
// is nil when none of the candidate date fields were present.
type FeedEntry struct {
	Title       string
	Link        string
	Content     string
	Author      string
	PublishedAt *time.Time
}

// RefreshResult reports the outcome of refreshing a single feed.
// Err is non-nil when the feed could not be fetched or ingested; a failed
// feed never aborts the refresh of the others.
type RefreshResult struct {
	FeedID      int64  `json:"feed_id"`
	FeedURL     string `json:"feed_url"`
	NewArticles int    `json:"new_articles"`
	Err         error  `json:"-"`
}
