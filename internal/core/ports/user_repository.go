package ports

import (
	"context"

	"github.com/homeserve/household-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByAuthID(ctx context.Context, authID string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpsertRole creates the user with role, or overwrites the role of the existing one.
	// created reports whether a new row was inserted.
	UpsertRole(ctx context.Context, authID, email string, role domain.Role) (user *domain.User, created bool, err error)
	// EnsureUser inserts the user with defaultRole when none exists and returns the stored row.
	EnsureUser(ctx context.Context, authID, email string, defaultRole domain.Role) (user *domain.User, created bool, err error)
}
