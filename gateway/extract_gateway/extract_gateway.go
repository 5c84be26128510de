// Package extract_gateway fetches an article's source page and reduces it
// to its readable fragment, satisfying the content extract port.
package extract_gateway

import (
	"context"
	"errors"

	"skim/domain"
	"skim/driver/page_fetch_driver"
	errs "skim/utils/errors"
	"skim/utils/html_parser"
	"skim/utils/logger"
)

type ContentExtractGateway struct {
	pages *page_fetch_driver.PageFetchDriver
}

func NewContentExtractGateway(pages *page_fetch_driver.PageFetchDriver) *ContentExtractGateway {
	return &ContentExtractGateway{pages: pages}
}

func (g *ContentExtractGateway) ExtractContent(ctx context.Context, pageURL string) (*domain.ExtractedContent, error) {
	if g.pages == nil {
		return nil, errors.New("page fetcher not available")
	}

	raw, err := g.pages.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, classifyFetchError(err, pageURL)
	}

	content, err := html_parser.ExtractReadable(raw, pageURL)
	if err != nil {
		logger.SafeError("failed to extract readable content", "url", pageURL, "error", err)
		return nil, errs.ExtractionError("failed to extract readable content", err, map[string]interface{}{"url": pageURL})
	}

	return content, nil
}

func classifyFetchError(err error, pageURL string) *errs.AppError {
	ctx := map[string]interface{}{"url": pageURL}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return errs.TimeoutError("page fetch timed out", err, ctx)
	case errors.Is(err, page_fetch_driver.ErrRobotsDisallowed):
		return errs.FetchError("site disallows automated fetching", err, ctx)
	default:
		return errs.FetchError("failed to fetch page", err, ctx)
	}
}
