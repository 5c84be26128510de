package feed_fetch_driver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel>
    <title>Quiet Streets Weekly</title>
    <description>Dispatches from slow places</description>
    <item>
      <title>Morning Market</title>
      <link>https://example.com/posts/morning-market</link>
      <description>short teaser</description>
      <content:encoded><![CDATA[<p>The full story of the market.</p>]]></content:encoded>
      <pubDate>Sat, 29 Aug 2026 08:00:00 GMT</pubDate>
      <author>ann@example.com (Ann Writer)</author>
    </item>
    <item>
      <title>Undated Note</title>
      <link>https://example.com/posts/undated</link>
      <description>only a summary here</description>
    </item>
    <item>
      <title>No Link</title>
      <description>cannot be stored</description>
    </item>
  </channel>
</rss>`

func TestFetchFeed_NormalizesEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	driver := NewFeedFetchDriver(5*time.Second, nil)

	parsed, err := driver.FetchFeed(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Quiet Streets Weekly", parsed.Title)
	assert.Equal(t, "Dispatches from slow places", parsed.Description)
	require.Len(t, parsed.Entries, 2, "entry without a link must be dropped")

	first := parsed.Entries[0]
	assert.Equal(t, "Morning Market", first.Title)
	assert.Equal(t, "https://example.com/posts/morning-market", first.Link)
	assert.Equal(t, "<p>The full story of the market.</p>", first.Content)
	assert.Equal(t, "Ann Writer", first.Author)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, 2026, first.PublishedAt.Year())

	second := parsed.Entries[1]
	assert.Equal(t, "only a summary here", second.Content)
	assert.Nil(t, second.PublishedAt)
	assert.Empty(t, second.Author)
}

func TestFetchFeed_UnreachableHost(t *testing.T) {
	driver := NewFeedFetchDriver(time.Second, nil)

	_, err := driver.FetchFeed(context.Background(), "http://127.0.0.1:1/feed.xml")
	assert.Error(t, err)
}

func TestFetchFeed_NotAFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>not a feed</body></html>"))
	}))
	defer srv.Close()

	driver := NewFeedFetchDriver(time.Second, nil)

	_, err := driver.FetchFeed(context.Background(), srv.URL)
	assert.Error(t, err)
}
