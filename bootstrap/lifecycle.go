package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger "news-fetcher/utils/logger"
	"news-fetcher/utils/otel"
)

// Run is the main application entry point. It initializes all dependencies,
// starts the server and the scheduled fetch job, then waits for a shutdown
// signal.
func Run(ctx context.Context) error {
	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
		}
	}()

	// Initialize logger
	loggerConfig := logger.LoadLoggerConfigFromEnv()
	contextLogger := logger.NewContextLoggerWithOTel(loggerConfig, otelCfg.Enabled)
	log := contextLogger.WithContext(ctx)
	logger.Logger = log

	log.Info("Starting news-fetcher service",
		"log_level", loggerConfig.Level,
		"log_format", loggerConfig.Format,
		"otel_enabled", otelCfg.Enabled,
		"service", otelCfg.ServiceName)

	// Build all dependencies
	deps, cleanup, err := BuildDependencies(ctx, contextLogger)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	// Start HTTP server
	httpServer := NewHTTPServer(deps)
	StartHTTPServer(httpServer, deps, log)

	// Start the scheduled fetch job
	if err := deps.JobHandler.StartNewsFetchJob(ctx); err != nil {
		return fmt.Errorf("failed to start news fetch job: %w", err)
	}

	log.Info("News-fetcher service started successfully")
	waitForShutdown(httpServer, deps, log)

	return nil
}

func waitForShutdown(httpServer interface{ Shutdown(context.Context) error }, deps *Dependencies, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down news-fetcher service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down HTTP server", "error", err)
	}

	if err := deps.JobHandler.Stop(); err != nil {
		log.Error("Error stopping job handler", "error", err)
	}

	log.Info("News-fetcher service stopped")
}
