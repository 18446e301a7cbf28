package logger

import (
	"log/slog"
	"os"
)

// Logger is the process-wide logger. main configures it at startup; the init
// below keeps tests from tripping over a nil logger.
var Logger *slog.Logger

func init() {
	if Logger == nil {
		Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))
	}
}
