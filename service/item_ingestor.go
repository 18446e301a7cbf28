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

// ItemIngestor implementation: the dedup/upsert engine.
type itemIngestor struct {
	items  repository.NewsItemRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewItemIngestor creates a new item ingestor.
func NewItemIngestor(items repository.NewsItemRepository, logger *slog.Logger) ItemIngestor {
	return &itemIngestor{
		items:  items,
		logger: logger,
		now:    time.Now,
	}
}

// UpsertItems digests every item, looks up which digests are already stored,
// and batch-inserts exactly the unseen subset. Digests repeated within one
// batch collapse to the first occurrence.
func (s *itemIngestor) UpsertItems(ctx context.Context, sourceID string, items []domain.FeedItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	hashes := make([]string, len(items))
	for i := range items {
		hashes[i] = domain.HashGUID(items[i].GUID)
	}

	existing, err := s.items.ExistingHashes(ctx, hashes)
	if err != nil {
		return 0, fmt.Errorf("look up existing item hashes: %w", err)
	}

	seen := make(map[string]struct{}, len(hashes))
	now := s.now()

	fresh := make([]*domain.NewsItem, 0, len(items))

	for i, item := range items {
		hash := hashes[i]

		if _, ok := existing[hash]; ok {
			continue
		}

		if _, ok := seen[hash]; ok {
			continue
		}
		seen[hash] = struct{}{}

		fresh = append(fresh, &domain.NewsItem{
			ID:          uuid.NewString(),
			SourceID:    sourceID,
			Title:       item.Title,
			Link:        item.Link,
			GUID:        item.GUID,
			GUIDHash:    hash,
			Summary:     item.Summary,
			ImageURL:    item.ImageURL,
			PublishedAt: item.PublishedAt,
			CreatedAt:   now,
		})
	}

	if len(fresh) == 0 {
		s.logger.InfoContext(ctx, "no new items", "source_id", sourceID, "candidates", len(items))
		return 0, nil
	}

	if err := s.items.CreateBatch(ctx, fresh); err != nil {
		return 0, fmt.Errorf("insert news items: %w", err)
	}

	return len(fresh), nil
}
