package sync_port

import (
	"context"
	"encoding/json"

	"skim/domain"
)

type SyncConfigPort interface {
	FetchSyncConfig(ctx context.Context, syncKey string) (*domain.SyncConfig, error)
	UpsertSyncConfig(ctx context.Context, syncKey string, configData json.RawMessage) error
}
