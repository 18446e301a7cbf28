package domain

// FetchSourceResult is the per-source outcome of one run. Err carries
// recoverable fetch/parse failures; it never carries storage failures, those
// abort the run instead.
type FetchSourceResult struct {
	SourceID      string
	SourceName    string
	NewItemsCount int
	Err           error
}

// Productive reports whether the source yielded new items without error, which
// is the eligibility condition for notification fan-out.
func (r FetchSourceResult) Productive() bool {
	return r.NewItemsCount > 0 && r.Err == nil
}

// FetchNewsResult is the pipeline's output contract, returned to the scheduler
// (and to the manual trigger endpoint). The caller is responsible for alerting
// on Success == false or a non-empty Errors list.
type FetchNewsResult struct {
	Success              bool     `json:"success"`
	SourcesProcessed     int      `json:"sources_processed"`
	TotalNewItems        int      `json:"total_new_items"`
	NotificationsCreated int      `json:"notifications_created"`
	NotificationsDeleted int      `json:"notifications_deleted"`
	Errors               []string `json:"errors"`
	DurationMs           int64    `json:"duration_ms"`
}
