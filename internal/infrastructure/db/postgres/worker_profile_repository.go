package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homeserve/household-api/internal/core/domain"
)

const workerProfileColumns = `id, user_id, worker_type, cuisine, experience_years, charges,
	long_term_offer, rating::float8, rating_count, time_slots, created_at, updated_at`

type WorkerProfileRepository struct {
	pool *pgxpool.Pool
}

func NewWorkerProfileRepository(pool *pgxpool.Pool) *WorkerProfileRepository {
	return &WorkerProfileRepository{pool: pool}
}

func (r *WorkerProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.WorkerProfile, error) {
	wp, err := scanWorkerProfile(r.pool.QueryRow(ctx, `SELECT `+workerProfileColumns+` FROM worker_profiles WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find worker profile: %w", err)
	}
	return wp, nil
}

// Upsert inserts or updates the worker profile owned by wp.UserID. Rating
// columns are never written here.
func (r *WorkerProfileRepository) Upsert(ctx context.Context, wp *domain.WorkerProfile) (*domain.WorkerProfile, error) {
	const q = `
		INSERT INTO worker_profiles (user_id, worker_type, cuisine, experience_years, charges, long_term_offer, time_slots)
		VALUES ($1, $2, $3, COALESCE($4, 0), $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET worker_type = EXCLUDED.worker_type,
		    cuisine = EXCLUDED.cuisine,
		    experience_years = EXCLUDED.experience_years,
		    charges = EXCLUDED.charges,
		    long_term_offer = EXCLUDED.long_term_offer,
		    time_slots = EXCLUDED.time_slots,
		    updated_at = now()
		RETURNING ` + workerProfileColumns

	saved, err := scanWorkerProfile(r.pool.QueryRow(ctx, q,
		wp.UserID, string(wp.WorkerType), wp.Cuisine, wp.ExperienceYears, wp.Charges, wp.LongTermOffer, nullJSON(wp.TimeSlots)))
	if err != nil {
		if _, ok := uniqueConstraint(err); ok {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("upsert worker profile: %w", err)
	}
	return saved, nil
}

func scanWorkerProfile(row pgx.Row) (*domain.WorkerProfile, error) {
	var (
		wp    domain.WorkerProfile
		years int
		slots []byte
	)
	err := row.Scan(&wp.ID, &wp.UserID, &wp.WorkerType, &wp.Cuisine, &years, &wp.Charges,
		&wp.LongTermOffer, &wp.Rating, &wp.RatingCount, &slots, &wp.CreatedAt, &wp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	wp.ExperienceYears = &years
	wp.TimeSlots = slots
	return &wp, nil
}
