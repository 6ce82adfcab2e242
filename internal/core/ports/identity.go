package ports

import (
	"context"

	"github.com/homeserve/household-api/internal/core/domain"
)

// IdentityVerifier validates a bearer token issued by the identity provider.
// Any failure is reported as domain.ErrUnauthenticated.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}
