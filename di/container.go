// Package di assembles the application graph: drivers at the bottom,
// gateways over them, usecases on top.
package di

import (
	"skim/config"
	"skim/driver/feed_fetch_driver"
	"skim/driver/page_fetch_driver"
	"skim/gateway/article_gateway"
	"skim/gateway/extract_gateway"
	"skim/gateway/feed_gateway"
	"skim/gateway/fetch_feed_gateway"
	"skim/gateway/refresh_feed_gateway"
	"skim/gateway/sync_gateway"
	"skim/usecase/delete_feed_usecase"
	"skim/usecase/fetch_articles_usecase"
	"skim/usecase/fetch_feed_usecase"
	"skim/usecase/full_content_usecase"
	"skim/usecase/reading_status"
	"skim/usecase/refresh_feed_usecase"
	"skim/usecase/register_feed_usecase"
	"skim/usecase/sync_usecase"
	"skim/usecase/update_feed_usecase"
	"skim/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	RegisterFeedUsecase  *register_feed_usecase.RegisterFeedUsecase
	FetchFeedsUsecase    *fetch_feed_usecase.FetchFeedsUsecase
	UpdateFeedUsecase    *update_feed_usecase.UpdateFeedUsecase
	DeleteFeedUsecase    *delete_feed_usecase.DeleteFeedUsecase
	RefreshFeedsUsecase  *refresh_feed_usecase.RefreshFeedsUsecase
	FetchArticlesUsecase *fetch_articles_usecase.FetchArticlesUsecase
	ReadingStatusUsecase *reading_status.ArticleReadingStatusUsecase
	FullContentUsecase   *full_content_usecase.FullContentUsecase
	SyncUsecase          *sync_usecase.SyncUsecase
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	// One limiter for all outbound traffic so feed pulls and page fetches
	// share the same per-host budget.
	limiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.ExternalAPIInterval)

	feedFetcher := feed_fetch_driver.NewFeedFetchDriver(cfg.HTTP.FeedFetchTimeout, limiter)
	pageFetcher := page_fetch_driver.NewPageFetchDriver(cfg.HTTP.PageFetchTimeout, limiter)

	feedGatewayImpl := feed_gateway.NewFeedGateway(pool)
	fetchFeedGatewayImpl := fetch_feed_gateway.NewFetchFeedGateway(feedFetcher)
	ingestGatewayImpl := refresh_feed_gateway.NewFeedIngestGateway(pool)
	articleGatewayImpl := article_gateway.NewArticleGateway(pool)
	extractGatewayImpl := extract_gateway.NewContentExtractGateway(pageFetcher)
	syncGatewayImpl := sync_gateway.NewSyncConfigGateway(pool)

	return &ApplicationComponents{
		RegisterFeedUsecase:  register_feed_usecase.NewRegisterFeedUsecase(feedGatewayImpl, fetchFeedGatewayImpl, ingestGatewayImpl),
		FetchFeedsUsecase:    fetch_feed_usecase.NewFetchFeedsUsecase(feedGatewayImpl),
		UpdateFeedUsecase:    update_feed_usecase.NewUpdateFeedUsecase(feedGatewayImpl),
		DeleteFeedUsecase:    delete_feed_usecase.NewDeleteFeedUsecase(feedGatewayImpl),
		RefreshFeedsUsecase:  refresh_feed_usecase.NewRefreshFeedsUsecase(feedGatewayImpl, fetchFeedGatewayImpl, ingestGatewayImpl),
		FetchArticlesUsecase: fetch_articles_usecase.NewFetchArticlesUsecase(articleGatewayImpl, cfg.Pagination),
		ReadingStatusUsecase: reading_status.NewArticleReadingStatusUsecase(articleGatewayImpl),
		FullContentUsecase:   full_content_usecase.NewFullContentUsecase(articleGatewayImpl, articleGatewayImpl, extractGatewayImpl),
		SyncUsecase:          sync_usecase.NewSyncUsecase(syncGatewayImpl, feedGatewayImpl, feedGatewayImpl),
	}
}
