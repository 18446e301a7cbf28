// ABOUTME: This file tests the access logging middleware
// ABOUTME: Verifies log fields, operation tagging and health probe skipping
package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-fetcher/utils/logger"
)

func newTestContextLogger(buf *bytes.Buffer) *logger.ContextLogger {
	config := &logger.LoggerConfig{Level: "debug", Format: "json", ServiceName: "news-fetcher"}
	return logger.NewContextLoggerWithWriter(buf, config)
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("should emit an access log entry with request fields", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := echo.New()
		e.Use(LoggingMiddleware(newTestContextLogger(buf)))
		e.POST("/api/v1/jobs/fetch-news", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/fetch-news", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		assert.Equal(t, "access", entry["log_type"])
		assert.Equal(t, "POST", entry["method"])
		assert.Equal(t, "/api/v1/jobs/fetch-news", entry["path"])
		assert.Equal(t, float64(http.StatusOK), entry["status_code"])
		assert.Equal(t, "request completed", entry["msg"])
	})

	t.Run("should tag the request context with the operation", func(t *testing.T) {
		buf := &bytes.Buffer{}
		var gotOperation any

		e := echo.New()
		e.Use(LoggingMiddleware(newTestContextLogger(buf)))
		e.GET("/api/v1/jobs/fetch-news/status", func(c echo.Context) error {
			gotOperation = c.Request().Context().Value(logger.OperationKey)
			return c.NoContent(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/fetch-news/status", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "GET /api/v1/jobs/fetch-news/status", gotOperation)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "GET /api/v1/jobs/fetch-news/status", entry["operation"])
	})

	t.Run("should skip health probes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := echo.New()
		e.Use(LoggingMiddleware(newTestContextLogger(buf)))
		e.GET("/api/v1/health", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, buf.Len())
	})
}
