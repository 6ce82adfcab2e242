package ports

import (
	"context"

	"github.com/homeserve/household-api/internal/core/domain"
)

// ProfileRepository persists basic profiles through the caller's delegated handle.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	// Upsert inserts or updates the profile keyed by UserID and marks it verified.
	// Returns domain.ErrPhoneInUse or domain.ErrProfileExists on unique violations.
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

// ProfileVerifier sets the verified flag with elevated privileges.
type ProfileVerifier interface {
	SetVerified(ctx context.Context, userID string, verified bool) (*domain.Profile, error)
}

// WorkerProfileRepository persists worker profiles keyed by owning user.
type WorkerProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.WorkerProfile, error)
	Upsert(ctx context.Context, wp *domain.WorkerProfile) (*domain.WorkerProfile, error)
}
