package domain

import "time"

// FeedItem is the parser's normalized view of a single feed entry. It is
// transient: the ingestor either persists it as a NewsItem or drops it as a
// duplicate.
type FeedItem struct {
	Title       string
	Link        string
	GUID        string
	Summary     *string
	ImageURL    *string
	PublishedAt time.Time
}

// NewsItem is a persisted, deduplicated feed item. Items are insert-only;
// retention cleanup targets notifications, never items.
type NewsItem struct {
	ID          string
	SourceID    string
	Title       string
	Link        string
	GUID        string
	GUIDHash    string
	Summary     *string
	ImageURL    *string
	PublishedAt time.Time
	CreatedAt   time.Time
}
