package fetch_articles_usecase

import (
	"context"
	"testing"

	"skim/config"
	"skim/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubArticles struct {
	gotPage    int
	gotPerPage int
	gotFeedID  *int64
	gotUnread  bool
}

func (s *stubArticles) FetchArticles(ctx context.Context, page, perPage int, feedID *int64, unreadOnly bool) ([]domain.Article, error) {
	s.gotPage = page
	s.gotPerPage = perPage
	s.gotFeedID = feedID
	s.gotUnread = unreadOnly
	return nil, nil
}

func (s *stubArticles) FetchArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	return &domain.Article{ID: id}, nil
}

func pagination() config.PaginationConfig {
	return config.PaginationConfig{DefaultPerPage: 20, MaxPerPage: 100}
}

func TestExecute_ClampsPagination(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"over max", 2, 500, 2, 100},
		{"in range", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubArticles{}
			usecase := NewFetchArticlesUsecase(stub, pagination())

			_, err := usecase.Execute(context.Background(), tt.page, tt.perPage, nil, false)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, stub.gotPage)
			assert.Equal(t, tt.wantPerPage, stub.gotPerPage)
		})
	}
}

func TestExecute_PassesFilters(t *testing.T) {
	stub := &stubArticles{}
	usecase := NewFetchArticlesUsecase(stub, pagination())

	feedID := int64(8)
	_, err := usecase.Execute(context.Background(), 1, 20, &feedID, true)
	require.NoError(t, err)

	require.NotNil(t, stub.gotFeedID)
	assert.Equal(t, int64(8), *stub.gotFeedID)
	assert.True(t, stub.gotUnread)
}
