package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"skim/di"

	"github.com/labstack/echo/v4"
)

// maxConfigBytes caps sync config uploads; the blob is client settings,
// not bulk storage.
const maxConfigBytes = 1 << 20

func registerSyncRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.GET("/sync/key", handleIssueSyncKey(container))
	api.GET("/sync/:key", handleGetSyncConfig(container))
	api.POST("/sync/:key", handlePutSyncConfig(container))
	api.GET("/export", handleExportFeeds(container))
	api.POST("/import", handleImportFeeds(container))
}

func handleIssueSyncKey(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, err := container.SyncUsecase.IssueKey(c.Request().Context())
		if err != nil {
			return handleError(c, err, "issue_sync_key")
		}
		return c.JSON(http.StatusOK, SyncKeyResponse{SyncKey: key})
	}
}

func handleGetSyncConfig(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		cfg, err := container.SyncUsecase.GetConfig(c.Request().Context(), c.Param("key"))
		if err != nil {
			return handleError(c, err, "get_sync_config")
		}
		return c.JSONBlob(http.StatusOK, cfg.ConfigData)
	}
}

func handlePutSyncConfig(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxConfigBytes))
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: "failed to read request body",
			}})
		}

		if err := container.SyncUsecase.PutConfig(c.Request().Context(), c.Param("key"), json.RawMessage(body)); err != nil {
			return handleError(c, err, "put_sync_config")
		}

		return c.JSON(http.StatusOK, SuccessResponse{Success: true})
	}
}

func handleExportFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		export, err := container.SyncUsecase.ExportFeeds(c.Request().Context())
		if err != nil {
			return handleError(c, err, "export_feeds")
		}
		return c.JSON(http.StatusOK, ExportResponse{Data: export})
	}
}

func handleImportFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ImportRequest
		if err := c.Bind(&req); err != nil || req.Data == nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: "no data provided",
			}})
		}

		result, err := container.SyncUsecase.ImportFeeds(c.Request().Context(), req.Data)
		if err != nil {
			return handleError(c, err, "import_feeds")
		}

		return c.JSON(http.StatusOK, ImportResponse{
			Success:  true,
			Imported: result.Imported,
			Skipped:  result.Skipped,
		})
	}
}
