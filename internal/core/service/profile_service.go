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

// ProfileService implements profile and worker-profile upserts and the two
// verification paths.
//
// Three paths set Profile.Verified and they disagree: UpsertProfile sets it
// unconditionally, AdminVerify trusts any authenticated caller, and VerifyMe
// checks eligibility first. Unifying them is a product decision.
type ProfileService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	workers  ports.WorkerProfileRepository
	verifier ports.ProfileVerifier
	log      zerolog.Logger
}

func NewProfileService(
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	workers ports.WorkerProfileRepository,
	verifier ports.ProfileVerifier,
	log zerolog.Logger,
) *ProfileService {
	return &ProfileService{users: users, profiles: profiles, workers: workers, verifier: verifier, log: log}
}

// UpsertProfile creates or updates the caller's profile. Every successful save
// marks the profile verified.
func (s *ProfileService) UpsertProfile(ctx context.Context, id domain.Identity, in ports.ProfileInput) (*domain.Profile, error) {
	user, err := userWithRole(ctx, s.users, id)
	if err != nil {
		return nil, err
	}

	saved, err := s.profiles.Upsert(ctx, &domain.Profile{
		UserID:   user.ID,
		Name:     in.Name,
		Phone:    in.Phone,
		Block:    in.Block,
		Flat:     in.Flat,
		Age:      in.Age,
		Verified: true,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	metrics.ProfilesSavedTotal.WithLabelValues("profile").Inc()
	s.log.Info().Str("user_id", user.ID).Str("profile_id", saved.ID).Msg("profile saved")
	return saved, nil
}

// UpsertWorkerProfile creates or updates the caller's worker profile. Only
// WORKER users may hold one.
func (s *ProfileService) UpsertWorkerProfile(ctx context.Context, id domain.Identity, in ports.WorkerProfileInput) (*domain.WorkerProfile, error) {
	user, err := userWithRole(ctx, s.users, id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleWorker {
		return nil, domain.ErrWorkerRoleRequired
	}

	experience := 0
	if in.ExperienceYears != nil {
		experience = *in.ExperienceYears
	}

	saved, err := s.workers.Upsert(ctx, &domain.WorkerProfile{
		UserID:          user.ID,
		WorkerType:      in.WorkerType,
		Cuisine:         in.Cuisine,
		ExperienceYears: &experience,
		Charges:         in.Charges,
		LongTermOffer:   in.LongTermOffer,
		TimeSlots:       in.TimeSlots,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert worker profile: %w", err)
	}

	metrics.ProfilesSavedTotal.WithLabelValues("worker_profile").Inc()
	s.log.Info().Str("user_id", user.ID).Str("worker_profile_id", saved.ID).Msg("worker profile saved")
	return saved, nil
}

// GetWorkerProfile returns the caller's worker profile.
func (s *ProfileService) GetWorkerProfile(ctx context.Context, id domain.Identity) (*domain.WorkerProfile, error) {
	user, err := ownerOf(ctx, s.users, id)
	if err != nil {
		return nil, err
	}
	return s.workers.FindByUserID(ctx, user.ID)
}

// AdminVerify sets the verified flag of the target's profile without any
// eligibility check.
// TODO: gate behind an administrator claim once the identity provider issues one.
func (s *ProfileService) AdminVerify(ctx context.Context, target ports.VerifyTarget, verified bool) (*domain.Profile, error) {
	var (
		user *domain.User
		err  error
	)
	switch {
	case target.UserID != "":
		user, err = s.users.FindByID(ctx, target.UserID)
	case target.AuthID != "":
		user, err = s.users.FindByAuthID(ctx, target.AuthID)
	default:
		err = domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	profile, err := s.verifier.SetVerified(ctx, user.ID, verified)
	if err != nil {
		return nil, fmt.Errorf("admin verify: %w", err)
	}

	result := "unverified"
	if verified {
		result = "verified"
	}
	metrics.VerificationsTotal.WithLabelValues("admin", result).Inc()
	s.log.Info().Str("user_id", user.ID).Bool("verified", verified).Msg("profile verification set by admin")
	return profile, nil
}

// VerifyMe verifies the caller once the basic profile, and for workers the
// worker profile, is complete.
func (s *ProfileService) VerifyMe(ctx context.Context, id domain.Identity) (*domain.Profile, error) {
	user, err := s.users.FindByAuthID(ctx, id.Subject)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	var (
		profile *domain.Profile
		worker  *domain.WorkerProfile
	)
	if user != nil {
		if profile, err = s.findProfile(ctx, user.ID); err != nil {
			return nil, err
		}
		if user.Role == domain.RoleWorker {
			if worker, err = s.findWorkerProfile(ctx, user.ID); err != nil {
				return nil, err
			}
		}
	}

	if err := domain.CheckVerificationEligibility(user, profile, worker); err != nil {
		metrics.VerificationsTotal.WithLabelValues("self", "rejected").Inc()
		return nil, err
	}

	verified, err := s.verifier.SetVerified(ctx, user.ID, true)
	if err != nil {
		return nil, fmt.Errorf("self verify: %w", err)
	}

	metrics.VerificationsTotal.WithLabelValues("self", "verified").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("profile self-verified")
	return verified, nil
}

func (s *ProfileService) findProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (s *ProfileService) findWorkerProfile(ctx context.Context, userID string) (*domain.WorkerProfile, error) {
	wp, err := s.workers.FindByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return wp, err
}
