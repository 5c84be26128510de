package job

import (
	"context"

	"skim/config"
	"skim/usecase/refresh_feed_usecase"
	"skim/utils/logger"
)

// NewRefreshJob builds the recurring all-feeds refresh. Per-feed failures
// are already isolated inside RefreshAll, so one dead feed never fails
// the job.
func NewRefreshJob(usecase *refresh_feed_usecase.RefreshFeedsUsecase, cfg config.RefreshConfig) Job {
	return Job{
		Name:     "refresh_all_feeds",
		Interval: cfg.Interval,
		Timeout:  cfg.Timeout,
		Fn: func(ctx context.Context) error {
			results, err := usecase.RefreshAll(ctx)
			if err != nil {
				return err
			}

			newArticles, failed := 0, 0
			for _, result := range results {
				if result.Err != nil {
					failed++
					continue
				}
				newArticles += result.NewArticles
			}

			logger.SafeInfo("background refresh finished",
				"feeds", len(results), "new_articles", newArticles, "failed", failed)

			return nil
		},
	}
}
