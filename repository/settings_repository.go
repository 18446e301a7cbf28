package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-fetcher/domain"
	"news-fetcher/driver"
)

// SettingsRepository implementation over the key/value settings rows.
type settingsRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *pgxpool.Pool, logger *slog.Logger) SettingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// Load reads the settings rows and applies per-key defaults. Each key is
// independently optional; malformed values count as absent.
func (r *settingsRepository) Load(ctx context.Context) (*domain.Settings, error) {
	if r.db == nil {
		return nil, fmt.Errorf("failed to load settings: database connection is nil")
	}

	rows, err := driver.GetSettingRows(ctx, r.db)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to load settings", "error", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := parseSettings(rows, r.logger)

	r.logger.InfoContext(ctx, "loaded settings",
		"fetch_interval_minutes", settings.FetchIntervalMinutes,
		"notification_retention_days", settings.NotificationRetentionDays,
	)

	return &settings, nil
}

// UpdateLastFetchAt upserts the last-fetch timestamp after a completed run.
func (r *settingsRepository) UpdateLastFetchAt(ctx context.Context, t time.Time) error {
	if r.db == nil {
		return fmt.Errorf("failed to update last fetch timestamp: database connection is nil")
	}

	value := t.UTC().Format(time.RFC3339)
	if err := driver.UpsertSetting(ctx, r.db, domain.SettingLastFetchAt, value); err != nil {
		r.logger.ErrorContext(ctx, "failed to update last fetch timestamp", "error", err)
		return fmt.Errorf("failed to update last fetch timestamp: %w", err)
	}

	return nil
}

func parseSettings(rows map[string]string, log *slog.Logger) domain.Settings {
	settings := domain.DefaultSettings()

	if raw, ok := rows[domain.SettingFetchIntervalMinutes]; ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			settings.FetchIntervalMinutes = v
		} else {
			log.Warn("ignoring malformed fetch interval setting", "value", raw)
		}
	}

	if raw, ok := rows[domain.SettingNotificationRetentionDays]; ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			settings.NotificationRetentionDays = v
		} else {
			log.Warn("ignoring malformed retention setting", "value", raw)
		}
	}

	if raw, ok := rows[domain.SettingLastFetchAt]; ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			settings.LastFetchAt = &t
		} else {
			log.Warn("ignoring malformed last fetch timestamp", "value", raw)
		}
	}

	return settings
}
