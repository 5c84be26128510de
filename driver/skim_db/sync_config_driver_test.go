package skim_db

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"skim/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSyncConfig(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	blob := json.RawMessage(`{"theme":"dark"}`)
	rows := pgxmock.NewRows([]string{"id", "sync_key", "config_data", "updated_at"}).
		AddRow(int64(1), "key-1", blob, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM sync_configs").
		WithArgs("key-1").
		WillReturnRows(rows)

	cfg, err := repo.FetchSyncConfig(context.Background(), "key-1")
	require.NoError(t, err)

	assert.Equal(t, "key-1", cfg.SyncKey)
	assert.JSONEq(t, `{"theme":"dark"}`, string(cfg.ConfigData))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchSyncConfig_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM sync_configs").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "sync_key", "config_data", "updated_at"}))

	_, err = repo.FetchSyncConfig(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSyncConfigNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSyncConfig(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	blob := json.RawMessage(`{"theme":"light"}`)
	mock.ExpectExec("INSERT INTO sync_configs").
		WithArgs("key-1", blob).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.UpsertSyncConfig(context.Background(), "key-1", blob)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
