// Package sync_gateway adapts the sync config persistence driver to the
// sync config port.
package sync_gateway

import (
	"context"
	"encoding/json"
	"errors"

	"skim/domain"
	"skim/driver/skim_db"
	errs "skim/utils/errors"
	"skim/utils/logger"
)

type SyncConfigGateway struct {
	db *skim_db.Repository
}

func NewSyncConfigGateway(pool skim_db.DBPool) *SyncConfigGateway {
	return &SyncConfigGateway{db: skim_db.NewRepository(pool)}
}

func (g *SyncConfigGateway) FetchSyncConfig(ctx context.Context, syncKey string) (*domain.SyncConfig, error) {
	cfg, err := g.db.FetchSyncConfig(ctx, syncKey)
	if err != nil {
		if errors.Is(err, domain.ErrSyncConfigNotFound) {
			return nil, errs.NotFoundError("sync config not found", map[string]interface{}{"sync_key": syncKey})
		}
		logger.SafeError("failed to fetch sync config", "error", err)
		return nil, errs.DatabaseError("failed to fetch sync config", err, nil)
	}
	return cfg, nil
}

func (g *SyncConfigGateway) UpsertSyncConfig(ctx context.Context, syncKey string, configData json.RawMessage) error {
	if err := g.db.UpsertSyncConfig(ctx, syncKey, configData); err != nil {
		logger.SafeError("failed to upsert sync config", "error", err)
		return errs.DatabaseError("failed to store sync config", err, nil)
	}
	return nil
}
