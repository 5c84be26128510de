// Package reading_status flips the read marker on stored articles.
package reading_status

import (
	"context"

	"skim/port/article_port"
	"skim/utils/logger"
)

type ArticleReadingStatusUsecase struct {
	statusGateway article_port.ArticleStatusPort
}

func NewArticleReadingStatusUsecase(statusGateway article_port.ArticleStatusPort) *ArticleReadingStatusUsecase {
	return &ArticleReadingStatusUsecase{statusGateway: statusGateway}
}

// Execute sets the read marker. Marking an already-read article read again
// is a no-op, not an error.
func (u *ArticleReadingStatusUsecase) Execute(ctx context.Context, articleID int64, read bool) error {
	if err := u.statusGateway.MarkArticleRead(ctx, articleID, read); err != nil {
		return err
	}

	logger.SafeInfo("read status updated", "article_id", articleID, "read", read)
	return nil
}
