package domain

import (
	"encoding/json"
	"time"
)

// SyncConfig is an opaque per-client configuration blob keyed by a
// generated sync token. Clients use it to share settings across devices.
type SyncConfig struct {
	ID         int64           `json:"id"`
	SyncKey    string          `json:"sync_key"`
	ConfigData json.RawMessage `json:"config_data"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// FeedExport is the serialized feed list used by export/import.
type FeedExport struct {
	Version string         `json:"version"`
	Feeds   []ExportedFeed `json:"feeds"`
}

// ExportedFeed carries the subset of feed fields needed to re-subscribe.
type ExportedFeed struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}
