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

// RequirementService implements the requirement lifecycle.
type RequirementService struct {
	users        ports.UserRepository
	requirements ports.RequirementRepository
	log          zerolog.Logger
}

func NewRequirementService(users ports.UserRepository, requirements ports.RequirementRepository, log zerolog.Logger) *RequirementService {
	return &RequirementService{users: users, requirements: requirements, log: log}
}

// Create posts a requirement owned by the caller. Only residents may post.
func (s *RequirementService) Create(ctx context.Context, id domain.Identity, in ports.CreateRequirementInput) (*domain.Requirement, error) {
	user, err := userWithRole(ctx, s.users, id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleResident {
		return nil, fmt.Errorf("only residents can post requirements: %w", domain.ErrForbiddenRole)
	}

	urgency := in.Urgency
	if urgency == "" {
		urgency = domain.UrgencyMedium
	}

	req, err := s.requirements.Create(ctx, &domain.Requirement{
		UserID:   user.ID,
		NeedType: in.NeedType,
		Details:  in.Details,
		Timing:   in.Timing,
		Price:    in.Price,
		Block:    in.Block,
		Flat:     in.Flat,
		Urgency:  urgency,
		Open:     true,
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to create requirement")
		return nil, err
	}

	metrics.ListingMutationsTotal.WithLabelValues("requirement", "create").Inc()
	s.log.Info().Str("requirement_id", req.ID).Str("urgency", string(req.Urgency)).Msg("requirement created")
	return req, nil
}

// ListOpen returns all open requirements, newest first.
func (s *RequirementService) ListOpen(ctx context.Context) ([]domain.RequirementListing, error) {
	return s.requirements.ListOpen(ctx)
}

// ListMine returns the caller's requirements, open or closed, newest first.
func (s *RequirementService) ListMine(ctx context.Context, id domain.Identity) ([]domain.Requirement, error) {
	user, err := ownerOf(ctx, s.users, id)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.Requirement{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.requirements.ListByOwner(ctx, user.ID)
}

// Toggle flips the open flag of a requirement the caller owns.
func (s *RequirementService) Toggle(ctx context.Context, id domain.Identity, requirementID string) (*domain.Requirement, error) {
	user, err := ownerOf(ctx, s.users, id)
	if err != nil {
		return nil, err
	}

	req, err := s.requirements.ToggleOpen(ctx, requirementID, user.ID)
	if err != nil {
		return nil, err
	}

	metrics.ListingMutationsTotal.WithLabelValues("requirement", "toggle").Inc()
	s.log.Info().Str("requirement_id", req.ID).Bool("open", req.Open).Msg("requirement toggled")
	return req, nil
}

// Delete resolves the caller's user first, then deletes the requirement only
// if that user owns it. Both lookups must succeed.
func (s *RequirementService) Delete(ctx context.Context, id domain.Identity, requirementID string) error {
	user, err := ownerOf(ctx, s.users, id)
	if err != nil {
		return err
	}

	if err := s.requirements.Delete(ctx, requirementID, user.ID); err != nil {
		return err
	}

	metrics.ListingMutationsTotal.WithLabelValues("requirement", "delete").Inc()
	s.log.Info().Str("requirement_id", requirementID).Str("user_id", user.ID).Msg("requirement deleted")
	return nil
}
