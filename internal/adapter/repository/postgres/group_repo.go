package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/infrastructure/postgres/generated"
)

// GroupRepository implements usecase.GroupResolver over the group_members
// table.
type GroupRepository struct {
	queries *generated.Queries
}

// NewGroupRepository creates a new GroupRepository.
func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{queries: generated.New(pool)}
}

// Resolve returns the owning group for a user.
func (r *GroupRepository) Resolve(ctx context.Context, userID string) (string, error) {
	groupID, err := r.queries.GetGroupForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrGroupNotFound
		}

		return "", err
	}

	return groupID, nil
}
