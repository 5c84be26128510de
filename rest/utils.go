package rest

import (
	stderrors "errors"
	"strconv"

	errs "skim/utils/errors"
	"skim/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts any error into the structured error payload. Errors
// that are not categorized AppErrors are masked as internal failures so no
// driver detail reaches clients.
func handleError(c echo.Context, err error, operation string) error {
	var appErr *errs.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errs.UnknownError("internal server error", err, nil)
	}

	errs.LogError(logger.Logger, appErr, operation)

	return c.JSON(appErr.HTTPStatusCode(), ErrorResponse{
		Error: ErrorDetail{
			Code:    string(appErr.Code),
			Message: appErr.Message,
		},
	})
}

func isNotFound(err error) bool {
	var appErr *errs.AppError
	return stderrors.As(err, &appErr) && appErr.Code == errs.ErrCodeNotFound
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errs.ValidationError("invalid "+name, map[string]interface{}{name: c.Param(name)})
	}
	return id, nil
}
