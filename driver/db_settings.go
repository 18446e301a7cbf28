package driver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GetSettingRows returns the raw key/value settings rows. Interpretation and
// defaulting happen in the repository layer.
func GetSettingRows(ctx context.Context, db *pgxpool.Pool) (map[string]string, error) {
	query := `SELECT key, value FROM news_settings`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan settings row: %w", err)
		}

		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settings rows: %w", err)
	}

	return settings, nil
}

// UpsertSetting writes a single settings key, inserting or overwriting.
func UpsertSetting(ctx context.Context, db *pgxpool.Pool, key, value string) error {
	query := `
		INSERT INTO news_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	if _, err := db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}

	return nil
}
