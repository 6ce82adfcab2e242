package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homeserve/household-api/internal/core/domain"
)

const userColumns = `id, auth_id, COALESCE(email, ''), COALESCE(role, ''), created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByAuthID(ctx context.Context, authID string) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE auth_id = $1`, authID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by auth id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// UpsertRole inserts the user with role, or overwrites the role of the
// existing row, in one statement. The flag reports whether a row was inserted.
func (r *UserRepository) UpsertRole(ctx context.Context, authID, email string, role domain.Role) (*domain.User, bool, error) {
	const q = `
		INSERT INTO users (auth_id, email, role)
		VALUES ($1, NULLIF($2, ''), $3)
		ON CONFLICT (auth_id) DO UPDATE
		SET role = EXCLUDED.role,
		    email = COALESCE(EXCLUDED.email, users.email),
		    updated_at = now()
		RETURNING ` + userColumns + `, (xmax = 0)`

	var (
		u        domain.User
		inserted bool
	)
	err := r.pool.QueryRow(ctx, q, authID, email, string(role)).
		Scan(&u.ID, &u.AuthID, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt, &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("upsert user role: %w", err)
	}
	return &u, inserted, nil
}

// EnsureUser inserts the user with defaultRole unless a row already exists,
// and returns the stored row either way.
func (r *UserRepository) EnsureUser(ctx context.Context, authID, email string, defaultRole domain.Role) (*domain.User, bool, error) {
	const q = `
		INSERT INTO users (auth_id, email, role)
		VALUES ($1, NULLIF($2, ''), $3)
		ON CONFLICT (auth_id) DO NOTHING
		RETURNING ` + userColumns

	u, err := scanUser(r.pool.QueryRow(ctx, q, authID, email, string(defaultRole)))
	if err == nil {
		return u, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("ensure user: %w", err)
	}

	existing, err := r.FindByAuthID(ctx, authID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.AuthID, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
