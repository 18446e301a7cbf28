package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-fetcher/domain"
	"news-fetcher/driver"
)

// UserRepository implementation.
type userRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *pgxpool.Pool, logger *slog.Logger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// ListWithExclusions joins the user-id listing with the exclusion pairs into
// one association per user.
func (r *userRepository) ListWithExclusions(ctx context.Context) ([]domain.UserExclusions, error) {
	if r.db == nil {
		return nil, fmt.Errorf("failed to list users: database connection is nil")
	}

	ids, err := driver.GetUserIDs(ctx, r.db)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	pairs, err := driver.GetExclusionPairs(ctx, r.db)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list exclusions", "error", err)
		return nil, fmt.Errorf("failed to list exclusions: %w", err)
	}

	users := make([]domain.UserExclusions, 0, len(ids))

	for _, id := range ids {
		excluded := make(map[string]struct{}, len(pairs[id]))
		for _, sourceID := range pairs[id] {
			excluded[sourceID] = struct{}{}
		}

		users = append(users, domain.UserExclusions{
			UserID:            id,
			ExcludedSourceIDs: excluded,
		})
	}

	r.logger.InfoContext(ctx, "listed users with exclusions", "count", len(users))

	return users, nil
}
