// Package full_content_usecase resolves the readable full content of an
// article. Extracted content is cached on the article row, so each source
// page is fetched at most once; when extraction fails the stored feed
// summary is returned instead along with the failure reason.
package full_content_usecase

import (
	"context"

	"skim/port/article_port"
	"skim/port/extract_port"
	"skim/utils/html_parser"
	"skim/utils/logger"
)

// Result is the resolved content for one article.
type Result struct {
	ArticleID int64
	Title     string
	Content   string
	// Extracted is false when Content is the stored feed summary rather
	// than readable content pulled from the source page.
	Extracted bool
	// FromCache is true when a previous extraction was reused.
	FromCache bool
	// Paywalled reports whether the content looks like a paywall stub.
	Paywalled bool
	// ExtractionError carries the failure reason when Extracted is false.
	ExtractionError string
}

type FullContentUsecase struct {
	articleGateway article_port.FetchArticlesPort
	contentGateway article_port.FullContentPort
	extractGateway extract_port.ContentExtractPort
}

func NewFullContentUsecase(
	articleGateway article_port.FetchArticlesPort,
	contentGateway article_port.FullContentPort,
	extractGateway extract_port.ContentExtractPort,
) *FullContentUsecase {
	return &FullContentUsecase{
		articleGateway: articleGateway,
		contentGateway: contentGateway,
		extractGateway: extractGateway,
	}
}

func (u *FullContentUsecase) Execute(ctx context.Context, articleID int64) (*Result, error) {
	article, err := u.articleGateway.FetchArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if article.FullContent != "" {
		return &Result{
			ArticleID: article.ID,
			Title:     article.Title,
			Content:   article.FullContent,
			Extracted: true,
			FromCache: true,
			Paywalled: html_parser.LooksPaywalled(article.FullContent),
		}, nil
	}

	extracted, err := u.extractGateway.ExtractContent(ctx, article.URL)
	if err != nil {
		// The stored summary is better than nothing; surface the failure
		// alongside it instead of erroring the whole request.
		return &Result{
			ArticleID:       article.ID,
			Title:           article.Title,
			Content:         article.Content,
			Paywalled:       html_parser.LooksPaywalled(article.Content),
			ExtractionError: err.Error(),
		}, nil
	}

	if err := u.contentGateway.StoreFullContent(ctx, article.ID, extracted.HTML); err != nil {
		logger.SafeWarn("failed to cache full content", "article_id", article.ID, "error", err)
	}

	title := extracted.Title
	if title == "" {
		title = article.Title
	}

	return &Result{
		ArticleID: article.ID,
		Title:     title,
		Content:   extracted.HTML,
		Extracted: true,
		Paywalled: html_parser.LooksPaywalled(extracted.HTML),
	}, nil
}
