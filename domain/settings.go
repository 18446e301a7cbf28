package domain

import "time"

// Settings keys as stored in the key/value settings table. Each key is
// independently optional; missing or malformed values fall back to defaults.
const (
	SettingFetchIntervalMinutes      = "fetch_interval_minutes"
	SettingNotificationRetentionDays = "notification_retention_days"
	SettingLastFetchAt               = "last_fetch_at"
)

const (
	DefaultFetchIntervalMinutes      = 30
	DefaultNotificationRetentionDays = 30
)

// Settings are the pipeline tunables loaded once per run. The pipeline itself
// only writes LastFetchAt; interval and retention are changed by the admin
// workflow.
type Settings struct {
	FetchIntervalMinutes      int
	NotificationRetentionDays int
	LastFetchAt               *time.Time
}

// DefaultSettings returns the settings applied when no rows exist.
func DefaultSettings() Settings {
	return Settings{
		FetchIntervalMinutes:      DefaultFetchIntervalMinutes,
		NotificationRetentionDays: DefaultNotificationRetentionDays,
		LastFetchAt:               nil,
	}
}

// FetchInterval returns the configured poll interval as a duration.
func (s Settings) FetchInterval() time.Duration {
	return time.Duration(s.FetchIntervalMinutes) * time.Minute
}
