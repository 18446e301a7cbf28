package driver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GetUserIDs returns the ids of all users eligible for notifications.
func GetUserIDs(ctx context.Context, db *pgxpool.Pool) ([]string, error) {
	query := `SELECT id FROM users ORDER BY id`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query user ids: %w", err)
	}
	defer rows.Close()

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id row: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user id rows: %w", err)
	}

	return ids, nil
}

// GetExclusionPairs returns every (user_id, source_id) exclusion association.
func GetExclusionPairs(ctx context.Context, db *pgxpool.Pool) (map[string][]string, error) {
	query := `SELECT user_id, source_id FROM user_source_exclusions`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query exclusion pairs: %w", err)
	}
	defer rows.Close()

	pairs := make(map[string][]string)

	for rows.Next() {
		var userID, sourceID string
		if err := rows.Scan(&userID, &sourceID); err != nil {
			return nil, fmt.Errorf("scan exclusion row: %w", err)
		}

		pairs[userID] = append(pairs[userID], sourceID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exclusion rows: %w", err)
	}

	return pairs, nil
}
