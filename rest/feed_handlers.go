package rest

import (
	"net/http"
	"strconv"

	"skim/di"

	"github.com/labstack/echo/v4"
)

func registerFeedRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.GET("/feeds", handleGetFeeds(container))
	api.GET("/feeds/:id", handleGetFeed(container))
	api.POST("/feeds", handleCreateFeed(container))
	api.PUT("/feeds/:id", handleUpdateFeed(container))
	api.DELETE("/feeds/:id", handleDeleteFeed(container))
	api.POST("/feeds/refresh", handleRefreshFeeds(container))
}

func handleGetFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feeds, err := container.FetchFeedsUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "get_feeds")
		}
		return c.JSON(http.StatusOK, feeds)
	}
}

func handleGetFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return handleError(c, err, "get_feed")
		}

		feed, err := container.FetchFeedsUsecase.ExecuteByID(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "get_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

func handleCreateFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CreateFeedRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: "invalid request body",
			}})
		}

		feed, inserted, err := container.RegisterFeedUsecase.Execute(c.Request().Context(), req.Title, req.URL, req.Description)
		if err != nil {
			return handleError(c, err, "create_feed")
		}

		return c.JSON(http.StatusCreated, CreateFeedResponse{ID: feed.ID, NewArticles: inserted})
	}
}

func handleUpdateFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return handleError(c, err, "update_feed")
		}

		var req UpdateFeedRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: "invalid request body",
			}})
		}

		if err := container.UpdateFeedUsecase.Execute(c.Request().Context(), id, req.Title, req.URL, req.Description); err != nil {
			return handleError(c, err, "update_feed")
		}

		return c.JSON(http.StatusOK, SuccessResponse{Success: true})
	}
}

func handleDeleteFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return handleError(c, err, "delete_feed")
		}

		// Deleting an already-absent feed reports success; the end state
		// is the same either way.
		if err := container.DeleteFeedUsecase.Execute(c.Request().Context(), id); err != nil && !isNotFound(err) {
			return handleError(c, err, "delete_feed")
		}

		return c.JSON(http.StatusOK, SuccessResponse{Success: true})
	}
}

func handleRefreshFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if raw := c.QueryParam("feed_id"); raw != "" {
			feedID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || feedID < 1 {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
					Code:    "VALIDATION_ERROR",
					Message: "invalid feed_id",
				}})
			}

			result, err := container.RefreshFeedsUsecase.RefreshOne(ctx, feedID)
			if err != nil {
				return handleError(c, err, "refresh_feed")
			}

			return c.JSON(http.StatusOK, RefreshResultResponse{
				FeedID:      result.FeedID,
				FeedURL:     result.FeedURL,
				NewArticles: result.NewArticles,
			})
		}

		results, err := container.RefreshFeedsUsecase.RefreshAll(ctx)
		if err != nil {
			return handleError(c, err, "refresh_feeds")
		}

		resp := RefreshAllResponse{Results: make([]RefreshResultResponse, 0, len(results))}
		for _, result := range results {
			out := RefreshResultResponse{
				FeedID:      result.FeedID,
				FeedURL:     result.FeedURL,
				NewArticles: result.NewArticles,
			}
			if result.Err != nil {
				out.Error = result.Err.Error()
			}
			resp.Results = append(resp.Results, out)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
