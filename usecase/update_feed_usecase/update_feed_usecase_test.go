package update_feed_usecase

import (
	"context"
	"testing"

	errs "skim/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUpdate struct {
	calls int
	err   error
}

func (s *stubUpdate) UpdateFeed(ctx context.Context, id int64, title, url, description string) error {
	s.calls++
	return s.err
}

func TestExecute_Updates(t *testing.T) {
	stub := &stubUpdate{}
	usecase := NewUpdateFeedUsecase(stub)

	err := usecase.Execute(context.Background(), 1, "Title", "https://example.com/feed", "d")
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
}

func TestExecute_RejectsBadInput(t *testing.T) {
	stub := &stubUpdate{}
	usecase := NewUpdateFeedUsecase(stub)

	tests := []struct {
		name  string
		title string
		url   string
	}{
		{"missing title", "", "https://example.com/feed"},
		{"missing url", "Title", ""},
		{"internal host", "Title", "http://169.254.169.254/feed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := usecase.Execute(context.Background(), 1, tt.title, tt.url, "")

			var appErr *errs.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errs.ErrCodeValidation, appErr.Code)
		})
	}

	assert.Zero(t, stub.calls)
}
