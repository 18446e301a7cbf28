package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-fetcher/domain"
)

// BatchInsertNotifications inserts all given notifications in a single
// statement inside one transaction. Metadata is stored as JSONB.
func BatchInsertNotifications(ctx context.Context, db *pgxpool.Pool, notifications []*domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	query := `
		INSERT INTO notifications (
			id, user_id, type, title, message, metadata, created_at
		) VALUES `

	const cols = 7

	values := make([]interface{}, 0, len(notifications)*cols)
	placeholders := make([]string, 0, len(notifications))

	for i, n := range notifications {
		metadata, err := json.Marshal(n.Metadata)
		if err != nil {
			return fmt.Errorf("marshal notification metadata: %w", err)
		}

		placeholder := make([]string, cols)
		for j := range placeholder {
			placeholder[j] = fmt.Sprintf("$%d", i*cols+j+1)
		}

		placeholders = append(placeholders, "("+strings.Join(placeholder, ", ")+")")
		values = append(values,
			n.ID,
			n.UserID,
			n.Type,
			n.Title,
			n.Message,
			metadata,
			n.CreatedAt,
		)
	}

	query += strings.Join(placeholders, ", ")

	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, query, values...); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("batch insert notifications: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit notifications: %w", err)
	}

	return nil
}

// DeleteNotificationsBefore removes all notifications created before the
// cutoff and returns the number of rows removed.
func DeleteNotificationsBefore(ctx context.Context, db *pgxpool.Pool, cutoff time.Time) (int64, error) {
	query := `DELETE FROM notifications WHERE created_at < $1`

	tag, err := db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete notifications before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	return tag.RowsAffected(), nil
}
