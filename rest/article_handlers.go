package rest

import (
	"net/http"
	"strconv"

	"skim/di"

	"github.com/labstack/echo/v4"
)

func registerArticleRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.GET("/articles", handleGetArticles(container))
	api.GET("/articles/:id", handleGetArticle(container))
	api.PUT("/articles/:id/read", handleMarkArticleRead(container))
	api.GET("/articles/:id/full-content", handleGetFullContent(container))
}

func handleGetArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
		unreadOnly := c.QueryParam("unread_only") == "true"

		var feedID *int64
		if raw := c.QueryParam("feed_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
					Code:    "VALIDATION_ERROR",
					Message: "invalid feed_id",
				}})
			}
			feedID = &id
		}

		articles, err := container.FetchArticlesUsecase.Execute(c.Request().Context(), page, perPage, feedID, unreadOnly)
		if err != nil {
			return handleError(c, err, "get_articles")
		}
		return c.JSON(http.StatusOK, articles)
	}
}

func handleGetArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return handleError(c, err, "get_article")
		}

		article, err := container.FetchArticlesUsecase.ExecuteByID(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "get_article")
		}
		return c.JSON(http.StatusOK, article)
	}
}

func handleMarkArticleRead(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return handleError(c, err, "mark_article_read")
		}

		read := true
		if raw := c.QueryParam("read"); raw != "" {
			read = raw == "true"
		}

		if err := container.ReadingStatusUsecase.Execute(c.Request().Context(), id, read); err != nil {
			return handleError(c, err, "mark_article_read")
		}

		return c.JSON(http.StatusOK, SuccessResponse{Success: true})
	}
}

func handleGetFullContent(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return handleError(c, err, "get_full_content")
		}

		result, err := container.FullContentUsecase.Execute(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "get_full_content")
		}

		resp := FullContentResponse{
			ArticleID:       result.ArticleID,
			Title:           result.Title,
			Content:         result.Content,
			Extracted:       result.Extracted,
			FromCache:       result.FromCache,
			Paywalled:       result.Paywalled,
			ExtractionError: result.ExtractionError,
		}

		// Extraction failures are a client-visible 400 but still carry the
		// stored summary so the reader has something to show.
		if result.ExtractionError != "" {
			return c.JSON(http.StatusBadRequest, resp)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
