package ports

import (
	"context"

	"github.com/homeserve/household-api/internal/core/domain"
)

// ServicePostRepository defines persistence operations for service posts.
// Every owner-scoped method matches the post id and the owning user id in the
// same statement; a miss on either yields domain.ErrNotFound.
type ServicePostRepository interface {
	Create(ctx context.Context, p *domain.ServicePost) (*domain.ServicePost, error)
	ListActive(ctx context.Context) ([]domain.ServiceListing, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.ServicePost, error)
	ToggleActive(ctx context.Context, postID, userID string) (*domain.ServicePost, error)
	Delete(ctx context.Context, postID, userID string) error
}

// RequirementRepository defines persistence operations for requirements.
type RequirementRepository interface {
	Create(ctx context.Context, r *domain.Requirement) (*domain.Requirement, error)
	ListOpen(ctx context.Context) ([]domain.RequirementListing, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Requirement, error)
	ToggleOpen(ctx context.Context, requirementID, userID string) (*domain.Requirement, error)
	Delete(ctx context.Context, requirementID, userID string) error
}
