// Package fetch_articles_usecase lists stored articles with pagination
// and optional feed and unread filters.
package fetch_articles_usecase

import (
	"context"

	"skim/config"
	"skim/domain"
	"skim/port/article_port"
)

type FetchArticlesUsecase struct {
	articleGateway article_port.FetchArticlesPort
	pagination     config.PaginationConfig
}

func NewFetchArticlesUsecase(articleGateway article_port.FetchArticlesPort, pagination config.PaginationConfig) *FetchArticlesUsecase {
	return &FetchArticlesUsecase{
		articleGateway: articleGateway,
		pagination:     pagination,
	}
}

// Execute lists articles newest first. Page numbers start at 1; out of
// range pagination values are clamped rather than rejected.
func (u *FetchArticlesUsecase) Execute(ctx context.Context, page, perPage int, feedID *int64, unreadOnly bool) ([]domain.Article, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = u.pagination.DefaultPerPage
	}
	if perPage > u.pagination.MaxPerPage {
		perPage = u.pagination.MaxPerPage
	}

	return u.articleGateway.FetchArticles(ctx, page, perPage, feedID, unreadOnly)
}

func (u *FetchArticlesUsecase) ExecuteByID(ctx context.Context, id int64) (*domain.Article, error) {
	return u.articleGateway.FetchArticleByID(ctx, id)
}
