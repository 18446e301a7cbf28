package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"news-fetcher/domain"
	"news-fetcher/repository"
)

// NotificationFanout implementation.
type notificationFanout struct {
	notifications repository.NotificationRepository
	batchSize     int
	logger        *slog.Logger
	now           func() time.Time
}

// NewNotificationFanout creates a new notification fan-out service. batchSize
// chunks the logically-single insert so very large user bases do not produce
// one unbounded statement.
func NewNotificationFanout(notifications repository.NotificationRepository, batchSize int, logger *slog.Logger) NotificationFanout {
	if batchSize < 1 {
		batchSize = 1
	}

	return &notificationFanout{
		notifications: notifications,
		batchSize:     batchSize,
		logger:        logger,
		now:           time.Now,
	}
}

// FanOut builds one notification per (user, productive source) pair, skipping
// excluded sources, and inserts them in chunked batches. No productive
// sources or no users means zero writes.
func (s *notificationFanout) FanOut(ctx context.Context, results []domain.FetchSourceResult, users []domain.UserExclusions) (int, error) {
	productive := make([]domain.FetchSourceResult, 0, len(results))
	for _, r := range results {
		if r.Productive() {
			productive = append(productive, r)
		}
	}

	if len(productive) == 0 || len(users) == 0 {
		return 0, nil
	}

	now := s.now()

	batch := make([]*domain.Notification, 0, len(users)*len(productive))

	for _, user := range users {
		for _, res := range productive {
			if user.Excludes(res.SourceID) {
				continue
			}

			batch = append(batch, &domain.Notification{
				ID:      uuid.NewString(),
				UserID:  user.UserID,
				Type:    domain.NotificationTypeNews,
				Title:   notificationTitle(res.NewItemsCount, res.SourceName),
				Message: fmt.Sprintf("Fresh articles from %s are ready to read.", res.SourceName),
				Metadata: domain.NotificationMetadata{
					SourceID:   res.SourceID,
					SourceName: res.SourceName,
					ItemCount:  res.NewItemsCount,
				},
				CreatedAt: now,
			})
		}
	}

	if len(batch) == 0 {
		return 0, nil
	}

	for start := 0; start < len(batch); start += s.batchSize {
		end := start + s.batchSize
		if end > len(batch) {
			end = len(batch)
		}

		if err := s.notifications.CreateBatch(ctx, batch[start:end]); err != nil {
			return 0, fmt.Errorf("insert notifications: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "notifications fanned out",
		"count", len(batch),
		"users", len(users),
		"productive_sources", len(productive),
	)

	return len(batch), nil
}

func notificationTitle(count int, sourceName string) string {
	word := "items"
	if count == 1 {
		word = "item"
	}

	return fmt.Sprintf("%d new %s from %s", count, word, sourceName)
}
