package driver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-fetcher/domain"
)

// GetActiveSources returns all sources with is_active = true, oldest first so
// the per-run processing order is stable.
func GetActiveSources(ctx context.Context, db *pgxpool.Pool) ([]domain.Source, error) {
	query := `
		SELECT id, url, name, is_active, created_at
		FROM news_sources
		WHERE is_active = true
		ORDER BY created_at ASC, id ASC
	`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query active sources: %w", err)
	}
	defer rows.Close()

	var sources []domain.Source

	for rows.Next() {
		var s domain.Source
		if err := rows.Scan(&s.ID, &s.URL, &s.Name, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan source row: %w", err)
		}

		sources = append(sources, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate source rows: %w", err)
	}

	return sources, nil
}
