package article_port

import (
	"context"

	"skim/domain"
)

type FetchArticlesPort interface {
	FetchArticles(ctx context.Context, page, perPage int, feedID *int64, unreadOnly bool) ([]domain.Article, error)
	FetchArticleByID(ctx context.Context, id int64) (*domain.Article, error)
}

type ArticleStatusPort interface {
	MarkArticleRead(ctx context.Context, id int64, read bool) error
}

// FullContentPort stores the extracted readable content of an article.
type FullContentPort interface {
	StoreFullContent(ctx context.Context, id int64, fullContent string) error
}
