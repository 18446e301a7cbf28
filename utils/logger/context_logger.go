// ABOUTME: This file provides context-aware structured logging
// ABOUTME: Supports request ID and operation propagation with JSON output
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	OperationKey ContextKey = "operation"
)

// ContextLogger wraps a slog.Logger and enriches it with fields extracted from
// a context.Context.
type ContextLogger struct {
	logger      *slog.Logger
	serviceName string
}

// NewContextLogger creates a ContextLogger from configuration.
func NewContextLogger(config *LoggerConfig) *ContextLogger {
	return NewContextLoggerWithOTel(config, false)
}

// NewContextLoggerWithOTel creates a ContextLogger, optionally tee-ing records
// to the OpenTelemetry log bridge.
func NewContextLoggerWithOTel(config *LoggerConfig, enableOTel bool) *ContextLogger {
	var handler slog.Handler = newHandler(os.Stdout, config)
	if enableOTel {
		handler = NewMultiHandler(handler, config.ServiceName)
	}

	base := slog.New(handler).With("service", config.ServiceName)

	return &ContextLogger{
		logger:      base,
		serviceName: config.ServiceName,
	}
}

// NewContextLoggerWithWriter creates a ContextLogger writing to w instead of
// stdout.
func NewContextLoggerWithWriter(w io.Writer, config *LoggerConfig) *ContextLogger {
	base := slog.New(newHandler(w, config)).With("service", config.ServiceName)

	return &ContextLogger{
		logger:      base,
		serviceName: config.ServiceName,
	}
}

// WithContext returns a slog.Logger carrying the request-scoped fields found
// in ctx.
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	var fields []any

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		fields = append(fields, "request_id", requestID)
	}

	if operation := ctx.Value(OperationKey); operation != nil {
		fields = append(fields, "operation", operation)
	}

	if len(fields) > 0 {
		return cl.logger.With(fields...)
	}

	return cl.logger
}

// Context helper functions
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}
