// Package sync_usecase lets clients share settings across devices through
// opaque config blobs, and round-trips the subscription list as a portable
// export document.
package sync_usecase

import (
	"context"
	"encoding/json"
	"errors"

	"skim/domain"
	"skim/port/feed_port"
	"skim/port/sync_port"
	errs "skim/utils/errors"
	"skim/utils/logger"

	"github.com/google/uuid"
)

// exportVersion identifies the feed export document format.
const exportVersion = "1.0"

// ImportResult reports how an import batch was applied.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type SyncUsecase struct {
	syncGateway     sync_port.SyncConfigPort
	fetchGateway    feed_port.FetchFeedsPort
	registerGateway feed_port.RegisterFeedPort
}

func NewSyncUsecase(
	syncGateway sync_port.SyncConfigPort,
	fetchGateway feed_port.FetchFeedsPort,
	registerGateway feed_port.RegisterFeedPort,
) *SyncUsecase {
	return &SyncUsecase{
		syncGateway:     syncGateway,
		fetchGateway:    fetchGateway,
		registerGateway: registerGateway,
	}
}

// IssueKey mints a fresh sync key. Nothing is stored until the client
// uploads its first config blob under the key.
func (u *SyncUsecase) IssueKey(ctx context.Context) (string, error) {
	key := uuid.NewString()
	logger.SafeInfo("sync key issued")
	return key, nil
}

func (u *SyncUsecase) GetConfig(ctx context.Context, syncKey string) (*domain.SyncConfig, error) {
	if syncKey == "" {
		return nil, errs.ValidationError("sync key is required", nil)
	}
	return u.syncGateway.FetchSyncConfig(ctx, syncKey)
}

// PutConfig replaces the config blob behind syncKey. The blob is opaque
// but must at least be valid JSON.
func (u *SyncUsecase) PutConfig(ctx context.Context, syncKey string, configData json.RawMessage) error {
	if syncKey == "" {
		return errs.ValidationError("sync key is required", nil)
	}
	if len(configData) == 0 || !json.Valid(configData) {
		return errs.ValidationError("config data must be valid json", nil)
	}

	return u.syncGateway.UpsertSyncConfig(ctx, syncKey, configData)
}

// ExportFeeds serializes the subscription list into a portable document.
func (u *SyncUsecase) ExportFeeds(ctx context.Context) (*domain.FeedExport, error) {
	feeds, err := u.fetchGateway.FetchFeeds(ctx)
	if err != nil {
		return nil, err
	}

	export := &domain.FeedExport{
		Version: exportVersion,
		Feeds:   make([]domain.ExportedFeed, 0, len(feeds)),
	}
	for _, feed := range feeds {
		export.Feeds = append(export.Feeds, domain.ExportedFeed{
			Title:       feed.Title,
			URL:         feed.URL,
			Description: feed.Description,
		})
	}

	return export, nil
}

// ImportFeeds subscribes to every feed in the export document. Feeds
// already subscribed are skipped, so importing the same document twice
// changes nothing the second time.
func (u *SyncUsecase) ImportFeeds(ctx context.Context, export *domain.FeedExport) (*ImportResult, error) {
	if export == nil {
		return nil, errs.ValidationError("export document is required", nil)
	}
	if export.Version != exportVersion {
		return nil, errs.ValidationError("unsupported export version", map[string]interface{}{"version": export.Version})
	}

	result := &ImportResult{}
	for _, feed := range export.Feeds {
		if feed.URL == "" {
			result.Skipped++
			continue
		}

		title := feed.Title
		if title == "" {
			title = feed.URL
		}

		_, err := u.registerGateway.RegisterFeed(ctx, title, feed.URL, feed.Description)
		if err != nil {
			if errors.Is(err, domain.ErrFeedAlreadyExists) || isConflict(err) {
				result.Skipped++
				continue
			}
			return nil, err
		}
		result.Imported++
	}

	logger.SafeInfo("feeds imported", "imported", result.Imported, "skipped", result.Skipped)

	return result, nil
}

func isConflict(err error) bool {
	var appErr *errs.AppError
	return errors.As(err, &appErr) && appErr.Code == errs.ErrCodeConflict
}
