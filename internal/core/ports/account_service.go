package ports

import (
	"context"

	"github.com/homeserve/household-api/internal/core/domain"
)

// RoleSelection is returned after a role has been chosen.
type RoleSelection struct {
	UserID string      `json:"userId"`
	Role   domain.Role `json:"role"`
}

type AccountService interface {
	SelectRole(ctx context.Context, id domain.Identity, role domain.Role) (*RoleSelection, error)
	Sync(ctx context.Context, id domain.Identity) (*domain.Me, error)
	Me(ctx context.Context, id domain.Identity) (*domain.Me, error)
}
