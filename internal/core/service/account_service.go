package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/homeserve/household-api/internal/core/domain"
	"github.com/homeserve/household-api/internal/core/ports"
	"github.com/homeserve/household-api/internal/metrics"
)

// AccountService implements role selection, bootstrap and the self view.
type AccountService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	workers  ports.WorkerProfileRepository
	log      zerolog.Logger
}

func NewAccountService(users ports.UserRepository, profiles ports.ProfileRepository, workers ports.WorkerProfileRepository, log zerolog.Logger) *AccountService {
	return &AccountService{users: users, profiles: profiles, workers: workers, log: log}
}

// SelectRole creates the user with role on first contact, or overwrites the
// existing role. Dependent profiles are left untouched.
func (s *AccountService) SelectRole(ctx context.Context, id domain.Identity, role domain.Role) (*ports.RoleSelection, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("select role %q: %w", role, domain.ErrRoleNotSelected)
	}

	user, created, err := s.users.UpsertRole(ctx, id.Subject, id.Email, role)
	if err != nil {
		return nil, fmt.Errorf("select role: %w", err)
	}

	result := "updated"
	if created {
		result = "created"
	}
	metrics.RoleSelectionsTotal.WithLabelValues(string(role), result).Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Bool("created", created).Msg("role selected")

	return &ports.RoleSelection{UserID: user.ID, Role: user.Role}, nil
}

// Sync makes sure a user row exists for the identity, defaulting to RESIDENT,
// and returns the enriched self view. Calling it again is a no-op.
func (s *AccountService) Sync(ctx context.Context, id domain.Identity) (*domain.Me, error) {
	user, created, err := s.users.EnsureUser(ctx, id.Subject, id.Email, domain.RoleResident)
	if err != nil {
		return nil, fmt.Errorf("sync user: %w", err)
	}
	if created {
		s.log.Info().Str("user_id", user.ID).Msg("user bootstrapped with default role")
	}
	return s.enrich(ctx, user)
}

// Me returns the enriched self view of an existing user.
func (s *AccountService) Me(ctx context.Context, id domain.Identity) (*domain.Me, error) {
	user, err := s.users.FindByAuthID(ctx, id.Subject)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, user)
}

func (s *AccountService) enrich(ctx context.Context, user *domain.User) (*domain.Me, error) {
	me := &domain.Me{User: user}

	profile, err := s.profiles.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		me.Profile = profile
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("load profile: %w", err)
	}

	worker, err := s.workers.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		me.WorkerProfile = worker
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("load worker profile: %w", err)
	}

	return me, nil
}
