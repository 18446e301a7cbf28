package driver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	logger "news-fetcher/utils/logger"
)

// newsFetchLockKey identifies the pipeline's advisory lock. Advisory locks are
// session-scoped, so the lock pins a dedicated connection for the duration of
// a run.
const newsFetchLockKey = int64(0x6e657773666574) // "newsfet"

// RunLock holds the advisory lock and the connection it lives on.
type RunLock struct {
	conn *pgxpool.Conn
}

// TryAcquireRunLock attempts to take the pipeline advisory lock without
// blocking. Returns (nil, false, nil) when another run holds it.
func TryAcquireRunLock(ctx context.Context, db *pgxpool.Pool) (*RunLock, bool, error) {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquire connection for run lock: %w", err)
	}

	var locked bool
	if err := conn.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, newsFetchLockKey).Scan(&locked); err != nil {
		conn.Release()
		return nil, false, fmt.Errorf("try advisory lock: %w", err)
	}

	if !locked {
		conn.Release()
		return nil, false, nil
	}

	return &RunLock{conn: conn}, true, nil
}

// Release unlocks and returns the connection to the pool. Safe to call once.
func (l *RunLock) Release(ctx context.Context) {
	if l == nil || l.conn == nil {
		return
	}

	if _, err := l.conn.Exec(ctx, `SELECT pg_advisory_unlock($1)`, newsFetchLockKey); err != nil {
		logger.Logger.WarnContext(ctx, "Failed to release run lock", "error", err)
	}

	l.conn.Release()
	l.conn = nil
}
