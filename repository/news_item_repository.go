package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-fetcher/domain"
	"news-fetcher/driver"
)

// NewsItemRepository implementation.
type newsItemRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewNewsItemRepository creates a new news item repository.
func NewNewsItemRepository(db *pgxpool.Pool, logger *slog.Logger) NewsItemRepository {
	return &newsItemRepository{
		db:     db,
		logger: logger,
	}
}

// ExistingHashes returns which of the candidate digests already exist.
func (r *newsItemRepository) ExistingHashes(ctx context.Context, hashes []string) (map[string]struct{}, error) {
	if r.db == nil {
		return nil, fmt.Errorf("failed to look up existing hashes: database connection is nil")
	}

	existing, err := driver.GetExistingGUIDHashes(ctx, r.db, hashes)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to look up existing hashes", "error", err, "candidates", len(hashes))
		return nil, fmt.Errorf("failed to look up existing hashes: %w", err)
	}

	return existing, nil
}

// CreateBatch inserts the given items in one batch statement.
func (r *newsItemRepository) CreateBatch(ctx context.Context, items []*domain.NewsItem) error {
	if len(items) == 0 {
		return nil
	}

	if r.db == nil {
		return fmt.Errorf("failed to create news items: database connection is nil")
	}

	if err := driver.BatchInsertNewsItems(ctx, r.db, items); err != nil {
		r.logger.ErrorContext(ctx, "failed to create news items", "error", err, "count", len(items))
		return fmt.Errorf("failed to create news items: %w", err)
	}

	r.logger.InfoContext(ctx, "created news items", "count", len(items))

	return nil
}
