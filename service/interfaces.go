package service

import (
	"context"
	"net/http"

	"news-fetcher/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// SourceFetcher processes one source end to end: HTTP fetch, parse, upsert.
// The FetchSourceResult carries recoverable per-source failures; a non-nil
// error is a storage failure that must abort the whole run.
type SourceFetcher interface {
	FetchSource(ctx context.Context, source domain.Source) (domain.FetchSourceResult, error)
}

// ItemIngestor deduplicates parsed items against the store and persists the
// unseen subset, returning the number of newly inserted items.
type ItemIngestor interface {
	UpsertItems(ctx context.Context, sourceID string, items []domain.FeedItem) (int, error)
}

// NotificationFanout emits one notification per (user, productive source)
// pair, honoring per-user exclusions, and returns the number created.
type NotificationFanout interface {
	FanOut(ctx context.Context, results []domain.FetchSourceResult, users []domain.UserExclusions) (int, error)
}

// RetentionCleaner purges notifications older than the retention window and
// returns the number deleted.
type RetentionCleaner interface {
	Cleanup(ctx context.Context, retentionDays int) (int, error)
}

// NewsPipeline is the scheduled entry point. Run never panics and never
// returns an error: fatal failures are folded into the result with
// success=false.
type NewsPipeline interface {
	Run(ctx context.Context) *domain.FetchNewsResult
}

// FeedParser normalizes raw feed XML into items. Implemented by feed.Parser.
type FeedParser interface {
	Parse(xmlText, sourceURL string) ([]domain.FeedItem, error)
}

// HTTPClient is the outbound HTTP dependency of the source fetcher.
type HTTPClient interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}
