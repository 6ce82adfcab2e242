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

// ServicePostService implements the service post lifecycle.
type ServicePostService struct {
	users   ports.UserRepository
	workers ports.WorkerProfileRepository
	posts   ports.ServicePostRepository
	log     zerolog.Logger
}

func NewServicePostService(users ports.UserRepository, workers ports.WorkerProfileRepository, posts ports.ServicePostRepository, log zerolog.Logger) *ServicePostService {
	return &ServicePostService{users: users, workers: workers, posts: posts, log: log}
}

// Create publishes a post for the caller's worker profile. New posts are active.
func (s *ServicePostService) Create(ctx context.Context, id domain.Identity, in ports.CreateServicePostInput) (*domain.ServicePost, error) {
	user, err := userWithRole(ctx, s.users, id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleWorker {
		return nil, fmt.Errorf("only workers can publish services: %w", domain.ErrForbiddenRole)
	}

	worker, err := s.workers.FindByUserID(ctx, user.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrWorkerProfileMissing
	}
	if err != nil {
		return nil, fmt.Errorf("load worker profile: %w", err)
	}

	post, err := s.posts.Create(ctx, &domain.ServicePost{
		WorkerID:    worker.ID,
		Title:       in.Title,
		Cuisine:     in.Cuisine,
		Price:       in.Price,
		Area:        in.Area,
		Timing:      in.Timing,
		Description: in.Description,
		TimeSlots:   in.TimeSlots,
		Active:      true,
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to create service post")
		return nil, err
	}

	metrics.ListingMutationsTotal.WithLabelValues("service", "create").Inc()
	s.log.Info().Str("post_id", post.ID).Str("worker_id", worker.ID).Msg("service post created")
	return post, nil
}

// ListActive returns all active posts, newest first.
func (s *ServicePostService) ListActive(ctx context.Context) ([]domain.ServiceListing, error) {
	return s.posts.ListActive(ctx)
}

// ListMine returns the caller's posts regardless of their active flag, newest first.
func (s *ServicePostService) ListMine(ctx context.Context, id domain.Identity) ([]domain.ServicePost, error) {
	user, err := ownerOf(ctx, s.users, id)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.ServicePost{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.posts.ListByOwner(ctx, user.ID)
}

// Toggle flips the active flag of a post the caller owns.
func (s *ServicePostService) Toggle(ctx context.Context, id domain.Identity, postID string) (*domain.ServicePost, error) {
	user, err := ownerOf(ctx, s.users, id)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.ToggleActive(ctx, postID, user.ID)
	if err != nil {
		return nil, err
	}

	metrics.ListingMutationsTotal.WithLabelValues("service", "toggle").Inc()
	s.log.Info().Str("post_id", post.ID).Bool("active", post.Active).Msg("service post toggled")
	return post, nil
}

// Delete removes a post the caller owns.
func (s *ServicePostService) Delete(ctx context.Context, id domain.Identity, postID string) error {
	user, err := ownerOf(ctx, s.users, id)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, postID, user.ID); err != nil {
		return err
	}

	metrics.ListingMutationsTotal.WithLabelValues("service", "delete").Inc()
	s.log.Info().Str("post_id", postID).Str("user_id", user.ID).Msg("service post deleted")
	return nil
}
