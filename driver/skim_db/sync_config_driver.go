package skim_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"skim/domain"
	"skim/utils/logger"

	"github.com/jackc/pgx/v5"
)

const fetchSyncConfigQuery = `
	SELECT id, sync_key, config_data, updated_at
	FROM sync_configs
	WHERE sync_key = $1
`

func (r *Repository) FetchSyncConfig(ctx context.Context, syncKey string) (*domain.SyncConfig, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var cfg domain.SyncConfig
	err := r.pool.QueryRow(ctx, fetchSyncConfigQuery, syncKey).
		Scan(&cfg.ID, &cfg.SyncKey, &cfg.ConfigData, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSyncConfigNotFound
		}
		err = fmt.Errorf("fetch sync config: %w", err)
		logger.SafeError("failed to fetch sync config", "error", err)
		return nil, err
	}

	return &cfg, nil
}

const upsertSyncConfigQuery = `
	INSERT INTO sync_configs (sync_key, config_data)
	VALUES ($1, $2)
	ON CONFLICT (sync_key) DO UPDATE SET
		config_data = EXCLUDED.config_data,
		updated_at = now()
`

// UpsertSyncConfig creates the config row on first write for a key and
// replaces it afterwards, bumping updated_at.
func (r *Repository) UpsertSyncConfig(ctx context.Context, syncKey string, configData json.RawMessage) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	if _, err := r.pool.Exec(ctx, upsertSyncConfigQuery, syncKey, configData); err != nil {
		err = fmt.Errorf("upsert sync config: %w", err)
		logger.SafeError("failed to upsert sync config", "error", err)
		return err
	}

	return nil
}
