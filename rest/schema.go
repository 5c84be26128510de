package rest

import "skim/domain"

type CreateFeedRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type CreateFeedResponse struct {
	ID          int64 `json:"id"`
	NewArticles int   `json:"new_articles"`
}

type UpdateFeedRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type RefreshResultResponse struct {
	FeedID      int64  `json:"feed_id"`
	FeedURL     string `json:"feed_url"`
	NewArticles int    `json:"new_articles"`
	Error       string `json:"error,omitempty"`
}

type RefreshAllResponse struct {
	Results []RefreshResultResponse `json:"results"`
}

type FullContentResponse struct {
	ArticleID       int64  `json:"article_id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	Extracted       bool   `json:"extracted"`
	FromCache       bool   `json:"from_cache"`
	Paywalled       bool   `json:"paywalled"`
	ExtractionError string `json:"extraction_error,omitempty"`
}

type SyncKeyResponse struct {
	SyncKey string `json:"sync_key"`
}

type ImportRequest struct {
	Data *domain.FeedExport `json:"data"`
}

type ImportResponse struct {
	Success  bool `json:"success"`
	Imported int  `json:"imported"`
	Skipped  int  `json:"skipped"`
}

type ExportResponse struct {
	Data *domain.FeedExport `json:"data"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
