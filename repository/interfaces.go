package repository

import (
	"context"
	"time"

	"news-fetcher/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/repository_mocks.go -package=mocks

// SourceRepository reads the configured feed sources.
type SourceRepository interface {
	ListActive(ctx context.Context) ([]domain.Source, error)
}

// SettingsRepository loads pipeline settings and records run metadata.
type SettingsRepository interface {
	Load(ctx context.Context) (*domain.Settings, error)
	UpdateLastFetchAt(ctx context.Context, t time.Time) error
}

// NewsItemRepository handles persisted feed items.
type NewsItemRepository interface {
	ExistingHashes(ctx context.Context, hashes []string) (map[string]struct{}, error)
	CreateBatch(ctx context.Context, items []*domain.NewsItem) error
}

// NotificationRepository handles notification persistence.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []*domain.Notification) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// UserRepository reads users together with their source exclusions.
type UserRepository interface {
	ListWithExclusions(ctx context.Context) ([]domain.UserExclusions, error)
}

// PipelineLock guards against overlapping runs. TryAcquire returns
// acquired=false without error when another run holds the lock; the release
// function is non-nil only when acquired.
type PipelineLock interface {
	TryAcquire(ctx context.Context) (release func(), acquired bool, err error)
}
