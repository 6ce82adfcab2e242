package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homeserve/household-api/internal/core/domain"
)

const requirementColumns = `r.id, r.user_id, r.need_type, r.details, r.timing, r.price, r.block, r.flat,
	r.urgency, r.open, r.created_at, r.updated_at`

// RequirementRepository stores requirements. Owner-scoped statements match
// user_id against the caller.
type RequirementRepository struct {
	pool *pgxpool.Pool
}

func NewRequirementRepository(pool *pgxpool.Pool) *RequirementRepository {
	return &RequirementRepository{pool: pool}
}

func (r *RequirementRepository) Create(ctx context.Context, req *domain.Requirement) (*domain.Requirement, error) {
	const q = `
		INSERT INTO requirements AS r (user_id, need_type, details, timing, price, block, flat, urgency, open)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + requirementColumns

	created, err := scanRequirement(r.pool.QueryRow(ctx, q,
		req.UserID, string(req.NeedType), req.Details, req.Timing, req.Price, req.Block, req.Flat,
		string(req.Urgency), req.Open))
	if err != nil {
		return nil, fmt.Errorf("insert requirement: %w", err)
	}
	return created, nil
}

// ListOpen returns open requirements with the poster's name, newest first.
func (r *RequirementRepository) ListOpen(ctx context.Context) ([]domain.RequirementListing, error) {
	const q = `
		SELECT ` + requirementColumns + `, COALESCE(pr.name, '')
		FROM requirements r
		LEFT JOIN profiles pr ON pr.user_id = r.user_id
		WHERE r.open
		ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list open requirements: %w", err)
	}
	defer rows.Close()

	out := []domain.RequirementListing{}
	for rows.Next() {
		var l domain.RequirementListing
		err := rows.Scan(&l.ID, &l.UserID, &l.NeedType, &l.Details, &l.Timing, &l.Price, &l.Block, &l.Flat,
			&l.Urgency, &l.Open, &l.CreatedAt, &l.UpdatedAt, &l.PostedBy)
		if err != nil {
			return nil, fmt.Errorf("scan requirement listing: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *RequirementRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Requirement, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+requirementColumns+` FROM requirements r WHERE r.user_id = $1 ORDER BY r.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list requirements by owner: %w", err)
	}
	defer rows.Close()

	out := []domain.Requirement{}
	for rows.Next() {
		req, err := scanRequirement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

// ToggleOpen flips the open flag of id when userID owns it.
func (r *RequirementRepository) ToggleOpen(ctx context.Context, id, userID string) (*domain.Requirement, error) {
	const q = `
		UPDATE requirements r
		SET open = NOT r.open, updated_at = now()
		WHERE r.id = $1 AND r.user_id = $2
		RETURNING ` + requirementColumns

	req, err := scanRequirement(r.pool.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("toggle requirement: %w", err)
	}
	return req, nil
}

// Delete removes id when userID owns it.
func (r *RequirementRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM requirements WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete requirement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRequirement(row pgx.Row) (*domain.Requirement, error) {
	var req domain.Requirement
	err := row.Scan(&req.ID, &req.UserID, &req.NeedType, &req.Details, &req.Timing, &req.Price, &req.Block, &req.Flat,
		&req.Urgency, &req.Open, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
