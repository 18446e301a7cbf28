// ABOUTME: Domain-level sentinel errors for the news-fetcher service
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Run-fatal errors. Any of these aborts the remainder of a run and surfaces as
// its sole error with success=false.
var (
	// ErrSettingsLoad indicates the settings rows could not be read
	ErrSettingsLoad = errors.New("failed to load pipeline settings")

	// ErrSourcesLoad indicates the active source list could not be read
	ErrSourcesLoad = errors.New("failed to load active sources")
)

// Coordination errors
var (
	// ErrRunInProgress indicates another run holds the pipeline lock.
	// The overlapping run short-circuits successfully instead of
	// double-firing notifications.
	ErrRunInProgress = errors.New("news fetch run already in progress")
)
