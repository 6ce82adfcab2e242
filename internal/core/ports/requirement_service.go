package ports

import (
	"context"

	"github.com/homeserve/household-api/internal/core/domain"
)

// CreateRequirementInput carries the fields of a new requirement.
type CreateRequirementInput struct {
	NeedType domain.WorkerType
	Details  *string
	Timing   *string
	Price    *int
	Block    *string
	Flat     *string
	Urgency  domain.Urgency // empty = MEDIUM
}

type RequirementService interface {
	Create(ctx context.Context, id domain.Identity, in CreateRequirementInput) (*domain.Requirement, error)
	ListOpen(ctx context.Context) ([]domain.RequirementListing, error)
	ListMine(ctx context.Context, id domain.Identity) ([]domain.Requirement, error)
	Toggle(ctx context.Context, id domain.Identity, requirementID string) (*domain.Requirement, error)
	Delete(ctx context.Context, id domain.Identity, requirementID string) error
}
