package ports

import (
	"context"
	"encoding/json"

	"github.com/homeserve/household-api/internal/core/domain"
)

// CreateServicePostInput carries the fields of a new service post.
type CreateServicePostInput struct {
	Title       string
	Cuisine     *domain.Cuisine
	Price       int
	Area        *string
	Timing      *string
	Description *string
	TimeSlots   json.RawMessage
}

type ServicePostService interface {
	Create(ctx context.Context, id domain.Identity, in CreateServicePostInput) (*domain.ServicePost, error)
	ListActive(ctx context.Context) ([]domain.ServiceListing, error)
	ListMine(ctx context.Context, id domain.Identity) ([]domain.ServicePost, error)
	Toggle(ctx context.Context, id domain.Identity, postID string) (*domain.ServicePost, error)
	Delete(ctx context.Context, id domain.Identity, postID string) error
}
