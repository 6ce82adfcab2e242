package ports

import (
	"context"
	"encoding/json"

	"github.com/homeserve/household-api/internal/core/domain"
)

// ProfileInput carries the fields of a basic profile upsert.
type ProfileInput struct {
	Name  string
	Phone string
	Block *string
	Flat  *string
	Age   *int
}

// WorkerProfileInput carries the fields of a worker profile upsert.
type WorkerProfileInput struct {
	WorkerType      domain.WorkerType
	Cuisine         *domain.Cuisine
	ExperienceYears *int // nil = 0
	Charges         int
	LongTermOffer   *string
	TimeSlots       json.RawMessage
}

// VerifyTarget identifies the user an administrator verifies. UserID wins when both are set.
type VerifyTarget struct {
	UserID string
	AuthID string
}

type ProfileService interface {
	UpsertProfile(ctx context.Context, id domain.Identity, in ProfileInput) (*domain.Profile, error)
	UpsertWorkerProfile(ctx context.Context, id domain.Identity, in WorkerProfileInput) (*domain.WorkerProfile, error)
	GetWorkerProfile(ctx context.Context, id domain.Identity) (*domain.WorkerProfile, error)
	AdminVerify(ctx context.Context, target VerifyTarget, verified bool) (*domain.Profile, error)
	VerifyMe(ctx context.Context, id domain.Identity) (*domain.Profile, error)
}
