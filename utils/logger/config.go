// ABOUTME: This file provides logger configuration loaded from the environment
// ABOUTME: Standardizes the service on slog with JSON output
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoggerConfig controls the slog handler built at startup.
type LoggerConfig struct {
	Level       string
	Format      string
	ServiceName string
}

// LoadLoggerConfigFromEnv loads configuration from environment variables.
func LoadLoggerConfigFromEnv() *LoggerConfig {
	return &LoggerConfig{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		Format:      getEnvOrDefault("LOG_FORMAT", "json"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "news-fetcher"),
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newHandler builds the base handler for the configured format and level.
func newHandler(output io.Writer, config *LoggerConfig) slog.Handler {
	options := &slog.HandlerOptions{
		Level:     parseLevel(config.Level),
		AddSource: false,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Lowercase level values for log-forwarder compatibility
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: slog.LevelKey, Value: slog.StringValue(strings.ToLower(level.String()))}
				}
			}
			return a
		},
	}

	if strings.ToLower(config.Format) == "text" {
		return slog.NewTextHandler(output, options)
	}

	return slog.NewJSONHandler(output, options)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
