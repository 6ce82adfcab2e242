package service

import (
	"context"
	"errors"

	"github.com/homeserve/household-api/internal/core/domain"
	"github.com/homeserve/household-api/internal/core/ports"
)

// userWithRole resolves the caller's user and requires a selected role.
// A caller without a user row has not selected a role either.
func userWithRole(ctx context.Context, users ports.UserRepository, id domain.Identity) (*domain.User, error) {
	user, err := users.FindByAuthID(ctx, id.Subject)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrRoleNotSelected
	}
	if err != nil {
		return nil, err
	}
	if !user.HasRole() {
		return nil, domain.ErrRoleNotSelected
	}
	return user, nil
}

// ownerOf resolves the caller's user for owner-scoped mutations. A caller
// without a user row owns nothing, so the miss surfaces as domain.ErrNotFound.
func ownerOf(ctx context.Context, users ports.UserRepository, id domain.Identity) (*domain.User, error) {
	user, err := users.FindByAuthID(ctx, id.Subject)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrNotFound
	}
	return user, err
}
