package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homeserve/household-api/internal/core/domain"
)

const servicePostColumns = `p.id, p.worker_id, p.title, p.cuisine, p.price, p.area, p.timing,
	p.description, p.time_slots, p.active, p.created_at, p.updated_at`

// ServicePostRepository stores service posts. Owner-scoped statements join
// worker_profiles and match its user_id against the caller.
type ServicePostRepository struct {
	pool *pgxpool.Pool
}

func NewServicePostRepository(pool *pgxpool.Pool) *ServicePostRepository {
	return &ServicePostRepository{pool: pool}
}

func (r *ServicePostRepository) Create(ctx context.Context, post *domain.ServicePost) (*domain.ServicePost, error) {
	const q = `
		INSERT INTO service_posts AS p (worker_id, title, cuisine, price, area, timing, description, time_slots, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + servicePostColumns

	created, err := scanServicePost(r.pool.QueryRow(ctx, q,
		post.WorkerID, post.Title, post.Cuisine, post.Price, post.Area, post.Timing, post.Description,
		nullJSON(post.TimeSlots), post.Active))
	if err != nil {
		return nil, fmt.Errorf("insert service post: %w", err)
	}
	return created, nil
}

// ListActive returns active posts joined with their worker, newest first.
func (r *ServicePostRepository) ListActive(ctx context.Context) ([]domain.ServiceListing, error) {
	const q = `
		SELECT ` + servicePostColumns + `,
		       COALESCE(pr.name, ''), pr.block, w.worker_type, w.rating::float8, w.rating_count, COALESCE(pr.verified, false)
		FROM service_posts p
		JOIN worker_profiles w ON w.id = p.worker_id
		LEFT JOIN profiles pr ON pr.user_id = w.user_id
		WHERE p.active
		ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list active service posts: %w", err)
	}
	defer rows.Close()

	out := []domain.ServiceListing{}
	for rows.Next() {
		var (
			l     domain.ServiceListing
			slots []byte
		)
		err := rows.Scan(&l.ID, &l.WorkerID, &l.Title, &l.Cuisine, &l.Price, &l.Area, &l.Timing,
			&l.Description, &slots, &l.Active, &l.CreatedAt, &l.UpdatedAt,
			&l.Worker.Name, &l.Worker.Block, &l.Worker.WorkerType, &l.Worker.Rating, &l.Worker.RatingCount, &l.Worker.Verified)
		if err != nil {
			return nil, fmt.Errorf("scan service listing: %w", err)
		}
		l.TimeSlots = slots
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListByOwner returns every post of the user's worker profile, newest first.
func (r *ServicePostRepository) ListByOwner(ctx context.Context, userID string) ([]domain.ServicePost, error) {
	const q = `
		SELECT ` + servicePostColumns + `
		FROM service_posts p
		JOIN worker_profiles w ON w.id = p.worker_id
		WHERE w.user_id = $1
		ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list service posts by owner: %w", err)
	}
	defer rows.Close()

	out := []domain.ServicePost{}
	for rows.Next() {
		p, err := scanServicePost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service post: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// ToggleActive flips the active flag of postID when userID owns it.
func (r *ServicePostRepository) ToggleActive(ctx context.Context, postID, userID string) (*domain.ServicePost, error) {
	const q = `
		UPDATE service_posts p
		SET active = NOT p.active, updated_at = now()
		FROM worker_profiles w
		WHERE p.id = $1 AND w.id = p.worker_id AND w.user_id = $2
		RETURNING ` + servicePostColumns

	p, err := scanServicePost(r.pool.QueryRow(ctx, q, postID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("toggle service post: %w", err)
	}
	return p, nil
}

// Delete removes postID when userID owns it.
func (r *ServicePostRepository) Delete(ctx context.Context, postID, userID string) error {
	const q = `
		DELETE FROM service_posts p
		USING worker_profiles w
		WHERE p.id = $1 AND w.id = p.worker_id AND w.user_id = $2`

	tag, err := r.pool.Exec(ctx, q, postID, userID)
	if err != nil {
		return fmt.Errorf("delete service post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanServicePost(row pgx.Row) (*domain.ServicePost, error) {
	var (
		p     domain.ServicePost
		slots []byte
	)
	err := row.Scan(&p.ID, &p.WorkerID, &p.Title, &p.Cuisine, &p.Price, &p.Area, &p.Timing,
		&p.Description, &slots, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.TimeSlots = slots
	return &p, nil
}
