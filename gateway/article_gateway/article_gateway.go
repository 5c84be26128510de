// Package article_gateway adapts the article persistence driver to the
// article ports.
package article_gateway

import (
	"context"
	"errors"

	"skim/domain"
	"skim/driver/skim_db"
	errs "skim/utils/errors"
	"skim/utils/logger"
)

type ArticleGateway struct {
	db *skim_db.Repository
}

func NewArticleGateway(pool skim_db.DBPool) *ArticleGateway {
	return &ArticleGateway{db: skim_db.NewRepository(pool)}
}

func (g *ArticleGateway) FetchArticles(ctx context.Context, page, perPage int, feedID *int64, unreadOnly bool) ([]domain.Article, error) {
	articles, err := g.db.FetchArticles(ctx, page, perPage, feedID, unreadOnly)
	if err != nil {
		logger.SafeError("failed to fetch articles", "page", page, "error", err)
		return nil, errs.DatabaseError("failed to fetch articles", err, map[string]interface{}{"page": page})
	}
	return articles, nil
}

func (g *ArticleGateway) FetchArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := g.db.FetchArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return nil, errs.NotFoundError("article not found", map[string]interface{}{"article_id": id})
		}
		logger.SafeError("failed to fetch article", "article_id", id, "error", err)
		return nil, errs.DatabaseError("failed to fetch article", err, map[string]interface{}{"article_id": id})
	}
	return article, nil
}

func (g *ArticleGateway) MarkArticleRead(ctx context.Context, id int64, read bool) error {
	err := g.db.MarkArticleRead(ctx, id, read)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return errs.NotFoundError("article not found", map[string]interface{}{"article_id": id})
		}
		logger.SafeError("failed to update read status", "article_id", id, "error", err)
		return errs.DatabaseError("failed to update read status", err, map[string]interface{}{"article_id": id})
	}
	return nil
}

func (g *ArticleGateway) StoreFullContent(ctx context.Context, id int64, fullContent string) error {
	err := g.db.StoreFullContent(ctx, id, fullContent)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return errs.NotFoundError("article not found", map[string]interface{}{"article_id": id})
		}
		logger.SafeError("failed to store full content", "article_id", id, "error", err)
		return errs.DatabaseError("failed to store full content", err, map[string]interface{}{"article_id": id})
	}
	return nil
}
