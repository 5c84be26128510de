package skim_db

import (
	"context"
	"errors"
	"fmt"

	"skim/domain"
	"skim/utils/logger"

	"github.com/jackc/pgx/v5"
)

const articleColumns = `
	a.id, a.feed_id, f.title, a.title, a.url, a.content, a.full_content,
	a.author, a.published_at, a.read, a.created_at
`

// FetchArticles returns one page of articles ordered newest-published
// first, with insertion order breaking published-time ties. feedID filters
// to a single feed when non-nil; unreadOnly hides read articles.
func (r *Repository) FetchArticles(ctx context.Context, page, perPage int, feedID *int64, unreadOnly bool) ([]domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `SELECT ` + articleColumns + `
		FROM articles a
		JOIN feeds f ON a.feed_id = f.id
		WHERE 1=1`
	args := make([]any, 0, 4)

	if feedID != nil {
		args = append(args, *feedID)
		query += fmt.Sprintf(" AND a.feed_id = $%d", len(args))
	}
	if unreadOnly {
		query += " AND a.read = false"
	}

	args = append(args, perPage)
	query += fmt.Sprintf(" ORDER BY a.published_at DESC NULLS LAST, a.id DESC LIMIT $%d", len(args))
	args = append(args, (page-1)*perPage)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		err = fmt.Errorf("fetch articles: %w", err)
		logger.SafeError("failed to fetch articles", "error", err)
		return nil, err
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, perPage)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, nil
}

const fetchArticleByIDQuery = `
	SELECT ` + articleColumns + `
	FROM articles a
	JOIN feeds f ON a.feed_id = f.id
	WHERE a.id = $1
`

func (r *Repository) FetchArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	article, err := scanArticle(r.pool.QueryRow(ctx, fetchArticleByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		err = fmt.Errorf("fetch article by id: %w", err)
		logger.SafeError("failed to fetch article", "article_id", id, "error", err)
		return nil, err
	}

	return article, nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var article domain.Article
	var content, fullContent, author *string

	err := row.Scan(
		&article.ID,
		&article.FeedID,
		&article.FeedTitle,
		&article.Title,
		&article.URL,
		&content,
		&fullContent,
		&author,
		&article.PublishedAt,
		&article.Read,
		&article.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	article.Content = stringOrEmpty(content)
	article.FullContent = stringOrEmpty(fullContent)
	article.Author = stringOrEmpty(author)

	return &article, nil
}
