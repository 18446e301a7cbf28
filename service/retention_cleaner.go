package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news-fetcher/repository"
)

// RetentionCleaner implementation.
type retentionCleaner struct {
	notifications repository.NotificationRepository
	logger        *slog.Logger
	now           func() time.Time
}

// NewRetentionCleaner creates a new retention cleaner.
func NewRetentionCleaner(notifications repository.NotificationRepository, logger *slog.Logger) RetentionCleaner {
	return &retentionCleaner{
		notifications: notifications,
		logger:        logger,
		now:           time.Now,
	}
}

// Cleanup deletes notifications older than retentionDays. It runs every
// invocation, whether or not the run found new items.
func (s *retentionCleaner) Cleanup(ctx context.Context, retentionDays int) (int, error) {
	cutoff := s.now().AddDate(0, 0, -retentionDays)

	deleted, err := s.notifications.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete stale notifications: %w", err)
	}

	return deleted, nil
}
