package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-fetcher/driver"
)

// PipelineLock implementation backed by a Postgres advisory lock.
type pipelineLock struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewPipelineLock creates a new pipeline lock.
func NewPipelineLock(db *pgxpool.Pool, logger *slog.Logger) PipelineLock {
	return &pipelineLock{
		db:     db,
		logger: logger,
	}
}

// TryAcquire takes the run lock without blocking. The returned release
// function must be called when the run finishes.
func (l *pipelineLock) TryAcquire(ctx context.Context) (func(), bool, error) {
	if l.db == nil {
		return nil, false, fmt.Errorf("failed to acquire run lock: database connection is nil")
	}

	lock, acquired, err := driver.TryAcquireRunLock(ctx, l.db)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to acquire run lock", "error", err)
		return nil, false, fmt.Errorf("failed to acquire run lock: %w", err)
	}

	if !acquired {
		return nil, false, nil
	}

	release := func() {
		// Release with a fresh context so shutdown paths still unlock.
		lock.Release(context.WithoutCancel(ctx))
	}

	return release, true, nil
}
