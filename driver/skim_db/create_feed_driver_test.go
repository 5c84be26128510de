package skim_db

import (
	"context"
	"testing"
	"time"

	"skim/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFeed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "last_updated"}).AddRow(int64(7), now)
	mock.ExpectQuery("INSERT INTO feeds").
		WithArgs("Example", "https://example.com/feed.xml", pgxmock.AnyArg()).
		WillReturnRows(rows)

	feed, err := repo.CreateFeed(context.Background(), "Example", "https://example.com/feed.xml", "tech news")
	require.NoError(t, err)

	assert.Equal(t, int64(7), feed.ID)
	assert.Equal(t, "Example", feed.Title)
	assert.Equal(t, "https://example.com/feed.xml", feed.URL)
	assert.Equal(t, "tech news", feed.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeed_DuplicateURL(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	mock.ExpectQuery("INSERT INTO feeds").
		WithArgs("Example", "https://example.com/feed.xml", pgxmock.AnyArg()).
		WillReturnError(&pgconnUniqueViolation)

	_, err = repo.CreateFeed(context.Background(), "Example", "https://example.com/feed.xml", "")
	assert.ErrorIs(t, err, domain.ErrFeedAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeed_NilPool(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.CreateFeed(context.Background(), "Example", "https://example.com/feed.xml", "")
	assert.Error(t, err)
}
