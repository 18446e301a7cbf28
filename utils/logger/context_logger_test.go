// ABOUTME: This file tests context-aware structured logging
// ABOUTME: Verifies field propagation from context and JSON output shape
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedContextLogger(buf *bytes.Buffer) *ContextLogger {
	config := &LoggerConfig{Level: "debug", Format: "json", ServiceName: "news-fetcher"}
	base := slog.New(newHandler(buf, config)).With("service", config.ServiceName)

	return &ContextLogger{
		logger:      base,
		serviceName: config.ServiceName,
	}
}

func TestContextLogger_WithContext(t *testing.T) {
	t.Run("should carry request id and operation from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		cl := newBufferedContextLogger(buf)

		ctx := WithRequestID(context.Background(), "req-123")
		ctx = WithOperation(ctx, "POST /api/v1/jobs/fetch-news")

		cl.WithContext(ctx).Info("run started")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		assert.Equal(t, "req-123", entry["request_id"])
		assert.Equal(t, "POST /api/v1/jobs/fetch-news", entry["operation"])
		assert.Equal(t, "news-fetcher", entry["service"])
		assert.Equal(t, "run started", entry["msg"])
	})

	t.Run("should log without context fields", func(t *testing.T) {
		buf := &bytes.Buffer{}
		cl := newBufferedContextLogger(buf)

		cl.WithContext(context.Background()).Info("plain entry")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		_, hasRequestID := entry["request_id"]
		assert.False(t, hasRequestID)
		assert.Equal(t, "plain entry", entry["msg"])
	})

	t.Run("should lowercase the level field", func(t *testing.T) {
		buf := &bytes.Buffer{}
		cl := newBufferedContextLogger(buf)

		cl.WithContext(context.Background()).Error("something failed")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "error", entry["level"])
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"ERROR":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, parseLevel(input), "input %q", input)
	}
}

func TestLoadLoggerConfigFromEnv(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg := LoadLoggerConfigFromEnv()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "news-fetcher", cfg.ServiceName)
	})

	t.Run("should honor overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("SERVICE_NAME", "news-fetcher-dev")

		cfg := LoadLoggerConfigFromEnv()
		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, "text", cfg.Format)
		assert.Equal(t, "news-fetcher-dev", cfg.ServiceName)
	})
}
