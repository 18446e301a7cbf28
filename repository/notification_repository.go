package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-fetcher/domain"
	"news-fetcher/driver"
)

// NotificationRepository implementation.
type notificationRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *pgxpool.Pool, logger *slog.Logger) NotificationRepository {
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBatch inserts the given notifications in one batch statement.
func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	if r.db == nil {
		return fmt.Errorf("failed to create notifications: database connection is nil")
	}

	if err := driver.BatchInsertNotifications(ctx, r.db, notifications); err != nil {
		r.logger.ErrorContext(ctx, "failed to create notifications", "error", err, "count", len(notifications))
		return fmt.Errorf("failed to create notifications: %w", err)
	}

	r.logger.InfoContext(ctx, "created notifications", "count", len(notifications))

	return nil
}

// DeleteOlderThan removes notifications created before the cutoff.
func (r *notificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	if r.db == nil {
		return 0, fmt.Errorf("failed to delete notifications: database connection is nil")
	}

	deleted, err := driver.DeleteNotificationsBefore(ctx, r.db, cutoff)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to delete notifications", "error", err)
		return 0, fmt.Errorf("failed to delete notifications: %w", err)
	}

	r.logger.InfoContext(ctx, "deleted stale notifications", "count", deleted, "cutoff", cutoff)

	return int(deleted), nil
}
