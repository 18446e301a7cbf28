package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler implementation.
type healthHandler struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *pgxpool.Pool, logger *slog.Logger) HealthHandler {
	return &healthHandler{
		db:     db,
		logger: logger,
	}
}

// CheckHealth verifies the service can reach its database.
func (h *healthHandler) CheckHealth(ctx context.Context) error {
	if h.db == nil {
		return fmt.Errorf("health check failed: database connection is nil")
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "health check failed", "error", err)
		return fmt.Errorf("health check failed: %w", err)
	}

	return nil
}
