package domain

import "time"

// Article is one ingested feed entry, deduplicated by URL across all feeds.
// FullContent is populated lazily by the content extractor and, once set,
// is only replaced when explicitly cleared.
type Article struct {
	ID          int64      `json:"id"`
	FeedID      int64      `json:"feed_id"`
	FeedTitle   string     `json:"feed_title,omitempty"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Content     string     `json:"content,omitempty"`
	FullContent string     `json:"full_content,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ExtractedContent is the readable fragment pulled out of an article's
// source page.
type ExtractedContent struct {
	Title string
	HTML  string
}
