package domain

import "time"

// NotificationTypeNews is the type tag carried by every notification this
// pipeline creates.
const NotificationTypeNews = "news"

// NotificationMetadata identifies the source a notification refers to.
type NotificationMetadata struct {
	SourceID   string `json:"source_id"`
	SourceName string `json:"source_name"`
	ItemCount  int    `json:"item_count"`
}

// Notification is one per-user message about a productive source. Created in
// batch by the fan-out stage and deleted in batch by retention cleanup.
type Notification struct {
	ID        string
	UserID    string
	Type      string
	Title     string
	Message   string
	Metadata  NotificationMetadata
	CreatedAt time.Time
}

// UserExclusions associates a user with the set of source IDs they muted.
// Read-only to the pipeline; consulted only during fan-out.
type UserExclusions struct {
	UserID            string
	ExcludedSourceIDs map[string]struct{}
}

// Excludes reports whether the user muted the given source.
func (u UserExclusions) Excludes(sourceID string) bool {
	_, ok := u.ExcludedSourceIDs[sourceID]
	return ok
}
