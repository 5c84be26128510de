package full_content_usecase

import (
	"context"
	"fmt"
	"testing"

	"skim/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubArticles struct {
	article *domain.Article
	err     error
}

func (s *stubArticles) FetchArticles(ctx context.Context, page, perPage int, feedID *int64, unreadOnly bool) ([]domain.Article, error) {
	return nil, nil
}

func (s *stubArticles) FetchArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	return s.article, s.err
}

type stubStore struct {
	calls   int
	gotID   int64
	gotHTML string
	err     error
}

func (s *stubStore) StoreFullContent(ctx context.Context, id int64, fullContent string) error {
	s.calls++
	s.gotID = id
	s.gotHTML = fullContent
	return s.err
}

type stubExtractor struct {
	content *domain.ExtractedContent
	err     error
	calls   int
}

func (s *stubExtractor) ExtractContent(ctx context.Context, pageURL string) (*domain.ExtractedContent, error) {
	s.calls++
	return s.content, s.err
}

func TestExecute_CachedContentSkipsExtraction(t *testing.T) {
	articles := &stubArticles{article: &domain.Article{
		ID:          9,
		Title:       "Stored",
		FullContent: "<p>already extracted</p>",
	}}
	store := &stubStore{}
	extractor := &stubExtractor{}

	usecase := NewFullContentUsecase(articles, store, extractor)

	result, err := usecase.Execute(context.Background(), 9)
	require.NoError(t, err)

	assert.True(t, result.FromCache)
	assert.True(t, result.Extracted)
	assert.Equal(t, "<p>already extracted</p>", result.Content)
	assert.Zero(t, extractor.calls)
	assert.Zero(t, store.calls)
}

func TestExecute_ExtractsAndStores(t *testing.T) {
	articles := &stubArticles{article: &domain.Article{
		ID:    4,
		Title: "Feed Title",
		URL:   "https://example.com/story",
	}}
	store := &stubStore{}
	extractor := &stubExtractor{content: &domain.ExtractedContent{
		Title: "Page Title",
		HTML:  "<p>the real story</p>",
	}}

	usecase := NewFullContentUsecase(articles, store, extractor)

	result, err := usecase.Execute(context.Background(), 4)
	require.NoError(t, err)

	assert.True(t, result.Extracted)
	assert.False(t, result.FromCache)
	assert.Equal(t, "Page Title", result.Title)
	assert.Equal(t, "<p>the real story</p>", result.Content)

	assert.Equal(t, 1, store.calls)
	assert.Equal(t, int64(4), store.gotID)
	assert.Equal(t, "<p>the real story</p>", store.gotHTML)
}

func TestExecute_FallsBackToSummaryOnFailure(t *testing.T) {
	articles := &stubArticles{article: &domain.Article{
		ID:      4,
		Title:   "Feed Title",
		URL:     "https://example.com/story",
		Content: "the short summary",
	}}
	store := &stubStore{}
	extractor := &stubExtractor{err: fmt.Errorf("site disallows automated fetching")}

	usecase := NewFullContentUsecase(articles, store, extractor)

	result, err := usecase.Execute(context.Background(), 4)
	require.NoError(t, err)

	assert.False(t, result.Extracted)
	assert.Equal(t, "the short summary", result.Content)
	assert.Contains(t, result.ExtractionError, "disallows")
	assert.Zero(t, store.calls, "fallback content must not be cached")
}

func TestExecute_StoreFailureStillReturnsContent(t *testing.T) {
	articles := &stubArticles{article: &domain.Article{ID: 4, URL: "https://example.com/story"}}
	store := &stubStore{err: fmt.Errorf("db down")}
	extractor := &stubExtractor{content: &domain.ExtractedContent{HTML: "<p>ok</p>"}}

	usecase := NewFullContentUsecase(articles, store, extractor)

	result, err := usecase.Execute(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "<p>ok</p>", result.Content)
}

func TestExecute_FlagsPaywalledContent(t *testing.T) {
	articles := &stubArticles{article: &domain.Article{ID: 4, URL: "https://example.com/story"}}
	store := &stubStore{}
	extractor := &stubExtractor{content: &domain.ExtractedContent{
		HTML: "<p>Subscribe now to read this premium story. Sign in or register for an account.</p>",
	}}

	usecase := NewFullContentUsecase(articles, store, extractor)

	result, err := usecase.Execute(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, result.Paywalled)
}
