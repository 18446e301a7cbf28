// ABOUTME: This file provides HTTP request/response logging middleware
// ABOUTME: Emits structured access logs with timing and context information
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"news-fetcher/utils/logger"
)

func LoggingMiddleware(contextLogger *logger.ContextLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			// Health probes would drown out the access log
			if req.URL.Path == "/health" || req.URL.Path == "/api/v1/health" {
				return next(c)
			}

			start := time.Now()

			// Tag the context so downstream logs carry the operation
			ctx := logger.WithOperation(req.Context(), req.Method+" "+req.URL.Path)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			duration := time.Since(start)

			accessLog := contextLogger.WithContext(ctx).With(
				"log_type", "access",
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", res.Status,
				"response_size", res.Size,
				"ip_address", c.RealIP(),
				"user_agent", req.UserAgent(),
				"duration_ms", duration.Milliseconds(),
			)

			accessLog.Info("request completed")

			return err
		}
	}
}
