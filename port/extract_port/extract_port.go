package extract_port

import (
	"context"

	"skim/domain"
)

// ContentExtractPort fetches an article's source page and reduces it to
// its readable fragment.
type ContentExtractPort interface {
	ExtractContent(ctx context.Context, pageURL string) (*domain.ExtractedContent, error)
}
