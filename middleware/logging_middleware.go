package middleware

import (
	"log/slog"
	"time"

	"skim/utils/logger"

	"github.com/labstack/echo/v4"
)

// LoggingMiddleware logs one line per request with method, path, status
// and duration. Health probes are skipped to keep the log readable.
func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/health" {
				return next(c)
			}

			start := time.Now()
			ctx := req.Context()

			err := next(c)

			res := c.Response()
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			}

			switch {
			case res.Status >= 500:
				contextLogger.WithContext(ctx).ErrorContext(ctx, "request completed", attrs...)
			case res.Status >= 400:
				contextLogger.WithContext(ctx).WarnContext(ctx, "request completed", attrs...)
			default:
				contextLogger.WithContext(ctx).InfoContext(ctx, "request completed", attrs...)
			}

			return err
		}
	}
}
