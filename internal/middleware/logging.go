package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger returns middleware that logs every request with slog.
// It logs the method, path, status, user ID (if authenticated), and duration.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"user_id", GetUserID(c),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			switch {
			case err != nil && status >= http.StatusInternalServerError:
				slog.Error("Request failed", append(attrs, "error", err)...)
			case err != nil:
				slog.Warn("Request rejected", append(attrs, "error", err)...)
			default:
				slog.Info("Request completed", attrs...)
			}

			return err
		}
	}
}
