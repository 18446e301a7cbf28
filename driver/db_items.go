package driver

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-fetcher/domain"
)

// GetExistingGUIDHashes returns the subset of the candidate digests that are
// already present in the item store.
func GetExistingGUIDHashes(ctx context.Context, db *pgxpool.Pool, hashes []string) (map[string]struct{}, error) {
	if len(hashes) == 0 {
		return map[string]struct{}{}, nil
	}

	query := `SELECT guid_hash FROM news_items WHERE guid_hash = ANY($1)`

	rows, err := db.Query(ctx, query, hashes)
	if err != nil {
		return nil, fmt.Errorf("query existing guid hashes: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]struct{}, len(hashes))

	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("scan guid hash row: %w", err)
		}

		existing[hash] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate guid hash rows: %w", err)
	}

	return existing, nil
}

// BatchInsertNewsItems inserts all given items in a single statement inside
// one transaction. Callers must pre-filter duplicates; guid_hash carries a
// unique constraint as the last line of defense.
func BatchInsertNewsItems(ctx context.Context, db *pgxpool.Pool, items []*domain.NewsItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO news_items (
			id, source_id, title, link, guid, guid_hash, summary, image_url, published_at, created_at
		) VALUES `

	const cols = 10

	values := make([]interface{}, 0, len(items)*cols)
	placeholders := make([]string, 0, len(items))

	for i, item := range items {
		placeholder := make([]string, cols)
		for j := range placeholder {
			placeholder[j] = fmt.Sprintf("$%d", i*cols+j+1)
		}

		placeholders = append(placeholders, "("+strings.Join(placeholder, ", ")+")")
		values = append(values,
			item.ID,
			item.SourceID,
			item.Title,
			item.Link,
			item.GUID,
			item.GUIDHash,
			item.Summary,
			item.ImageURL,
			item.PublishedAt,
			item.CreatedAt,
		)
	}

	query += strings.Join(placeholders, ", ")

	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, query, values...); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("batch insert news items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit news items: %w", err)
	}

	return nil
}
