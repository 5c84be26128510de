package refresh_feed_usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"skim/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeeds struct {
	feeds []domain.Feed
}

func (s *stubFeeds) FetchFeeds(ctx context.Context) ([]domain.Feed, error) {
	return s.feeds, nil
}

func (s *stubFeeds) FetchFeedByID(ctx context.Context, id int64) (*domain.Feed, error) {
	for i := range s.feeds {
		if s.feeds[i].ID == id {
			return &s.feeds[i], nil
		}
	}
	return nil, domain.ErrFeedNotFound
}

type stubFetcher struct {
	mu      sync.Mutex
	parsed  map[string]*domain.ParsedFeed
	failFor map[string]error
}

func (s *stubFetcher) FetchFeed(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failFor[feedURL]; ok {
		return nil, err
	}
	if parsed, ok := s.parsed[feedURL]; ok {
		return parsed, nil
	}
	return &domain.ParsedFeed{}, nil
}

type stubIngest struct {
	mu              sync.Mutex
	insertedByID    map[int64]int
	metadataCalls   []int64
	lastTitle       string
	lastDescription string
}

func (s *stubIngest) IngestEntries(ctx context.Context, feedID int64, entries []domain.FeedEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertedByID[feedID], nil
}

func (s *stubIngest) SyncFeedMetadata(ctx context.Context, feedID int64, title, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadataCalls = append(s.metadataCalls, feedID)
	s.lastTitle = title
	s.lastDescription = description
	return nil
}

func TestRefreshOne(t *testing.T) {
	feeds := &stubFeeds{feeds: []domain.Feed{
		{ID: 1, Title: "One", URL: "https://one.example.com/feed"},
	}}
	fetcher := &stubFetcher{parsed: map[string]*domain.ParsedFeed{
		"https://one.example.com/feed": {Title: "One", Entries: []domain.FeedEntry{{Link: "https://one.example.com/a"}}},
	}}
	ingest := &stubIngest{insertedByID: map[int64]int{1: 5}}

	usecase := NewRefreshFeedsUsecase(feeds, fetcher, ingest)

	result, err := usecase.RefreshOne(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.FeedID)
	assert.Equal(t, 5, result.NewArticles)
}

func TestRefreshOne_UnknownFeed(t *testing.T) {
	usecase := NewRefreshFeedsUsecase(&stubFeeds{}, &stubFetcher{}, &stubIngest{})

	_, err := usecase.RefreshOne(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrFeedNotFound)
}

func TestRefreshAll_IsolatesFailures(t *testing.T) {
	feeds := &stubFeeds{feeds: []domain.Feed{
		{ID: 1, Title: "One", URL: "https://one.example.com/feed"},
		{ID: 2, Title: "Two", URL: "https://two.example.com/feed"},
		{ID: 3, Title: "Three", URL: "https://three.example.com/feed"},
	}}
	fetcher := &stubFetcher{
		parsed: map[string]*domain.ParsedFeed{
			"https://one.example.com/feed":   {Title: "One"},
			"https://three.example.com/feed": {Title: "Three"},
		},
		failFor: map[string]error{
			"https://two.example.com/feed": fmt.Errorf("gone away"),
		},
	}
	ingest := &stubIngest{insertedByID: map[int64]int{1: 2, 3: 4}}

	usecase := NewRefreshFeedsUsecase(feeds, fetcher, ingest)

	results, err := usecase.RefreshAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, 2, results[0].NewArticles)

	assert.Error(t, results[1].Err)
	assert.Zero(t, results[1].NewArticles)

	assert.NoError(t, results[2].Err)
	assert.Equal(t, 4, results[2].NewArticles)
}

func TestRefresh_SyncsDriftedMetadata(t *testing.T) {
	feeds := &stubFeeds{feeds: []domain.Feed{
		{ID: 1, Title: "Old Title", URL: "https://one.example.com/feed"},
	}}
	fetcher := &stubFetcher{parsed: map[string]*domain.ParsedFeed{
		"https://one.example.com/feed": {Title: "New Title"},
	}}
	ingest := &stubIngest{insertedByID: map[int64]int{}}

	usecase := NewRefreshFeedsUsecase(feeds, fetcher, ingest)

	_, err := usecase.RefreshOne(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, ingest.metadataCalls)
}

func TestRefresh_KeepsDescriptionWhenUpstreamOmitsIt(t *testing.T) {
	feeds := &stubFeeds{feeds: []domain.Feed{
		{ID: 1, Title: "Old Title", Description: "keep me", URL: "https://one.example.com/feed"},
	}}
	fetcher := &stubFetcher{parsed: map[string]*domain.ParsedFeed{
		"https://one.example.com/feed": {Title: "New Title"},
	}}
	ingest := &stubIngest{insertedByID: map[int64]int{}}

	usecase := NewRefreshFeedsUsecase(feeds, fetcher, ingest)

	_, err := usecase.RefreshOne(context.Background(), 1)
	require.NoError(t, err)

	require.Equal(t, []int64{1}, ingest.metadataCalls)
	assert.Equal(t, "New Title", ingest.lastTitle)
	assert.Equal(t, "keep me", ingest.lastDescription)
}

func TestRefresh_LeavesMatchingMetadataAlone(t *testing.T) {
	feeds := &stubFeeds{feeds: []domain.Feed{
		{ID: 1, Title: "Same", Description: "same desc", URL: "https://one.example.com/feed"},
	}}
	fetcher := &stubFetcher{parsed: map[string]*domain.ParsedFeed{
		"https://one.example.com/feed": {Title: "Same", Description: "same desc"},
	}}
	ingest := &stubIngest{insertedByID: map[int64]int{}}

	usecase := NewRefreshFeedsUsecase(feeds, fetcher, ingest)

	_, err := usecase.RefreshOne(context.Background(), 1)
	require.NoError(t, err)

	assert.Empty(t, ingest.metadataCalls)
}
