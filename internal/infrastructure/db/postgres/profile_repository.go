package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homeserve/household-api/internal/core/domain"
)

const profileColumns = `id, user_id, name, phone, block, flat, age, verified, created_at, updated_at`

// ProfileRepository reads and writes profiles through the delegated pool.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
}

// Upsert inserts or updates the profile owned by p.UserID. Every save marks
// the profile verified.
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	const q = `
		INSERT INTO profiles (user_id, name, phone, block, flat, age, verified)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name,
		    phone = EXCLUDED.phone,
		    block = EXCLUDED.block,
		    flat = EXCLUDED.flat,
		    age = EXCLUDED.age,
		    verified = true,
		    updated_at = now()
		RETURNING ` + profileColumns

	saved, err := scanProfile(r.pool.QueryRow(ctx, q, p.UserID, p.Name, p.Phone, p.Block, p.Flat, p.Age))
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			if constraint == phoneConstraint {
				return nil, domain.ErrPhoneInUse
			}
			return nil, domain.ErrProfileExists
		}
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return saved, nil
}

// ProfileVerifier sets the verified flag through the privileged pool. It
// backs the administrative and self-verification paths only.
type ProfileVerifier struct {
	pool *pgxpool.Pool
}

func NewProfileVerifier(privileged *pgxpool.Pool) *ProfileVerifier {
	return &ProfileVerifier{pool: privileged}
}

func (v *ProfileVerifier) SetVerified(ctx context.Context, userID string, verified bool) (*domain.Profile, error) {
	const q = `
		UPDATE profiles
		SET verified = $2, updated_at = now()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	p, err := scanProfile(v.pool.QueryRow(ctx, q, userID, verified))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("set verified: %w", err)
	}
	return p, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Phone, &p.Block, &p.Flat, &p.Age, &p.Verified, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
