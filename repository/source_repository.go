package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-fetcher/domain"
	"news-fetcher/driver"
)

// SourceRepository implementation.
type sourceRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewSourceRepository creates a new source repository.
func NewSourceRepository(db *pgxpool.Pool, logger *slog.Logger) SourceRepository {
	return &sourceRepository{
		db:     db,
		logger: logger,
	}
}

// ListActive returns all active sources in stable creation order.
func (r *sourceRepository) ListActive(ctx context.Context) ([]domain.Source, error) {
	if r.db == nil {
		return nil, fmt.Errorf("failed to list active sources: database connection is nil")
	}

	sources, err := driver.GetActiveSources(ctx, r.db)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list active sources", "error", err)
		return nil, fmt.Errorf("failed to list active sources: %w", err)
	}

	r.logger.InfoContext(ctx, "listed active sources", "count", len(sources))

	return sources, nil
}
