package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-admin-service/internal/domain"
)

// Postgres-backed implementation of the PenaltyRepository port.
type PostgresPenaltyRepository struct{ DB *sql.DB }

func NewPostgresPenaltyRepository(db *sql.DB) *PostgresPenaltyRepository {
	return &PostgresPenaltyRepository{DB: db}
}

func (r *PostgresPenaltyRepository) CreatePenalty(ctx context.Context, p *domain.Penalty) (int64, error) {
	if r.DB == nil {
		return 0, errors.New("penalty repository: DB is nil")
	}

	query := `
	INSERT INTO penalties (driver_id, reason, amount, note)
	VALUES ($1, $2, $3, $4)
	RETURNING penalty_id;
	`
	var id int64
	if err := r.DB.QueryRowContext(ctx, query, p.DriverID, string(p.Reason), p.Amount, p.Note).Scan(&id); err != nil {
		return 0, fmt.Errorf("create penalty for driver %d: %w", p.DriverID, err)
	}
	p.PenaltyID = id
	return id, nil
}

func (r *PostgresPenaltyRepository) ListPenaltiesByDriver(ctx context.Context, driverID int64) ([]*domain.Penalty, error) {
	query := `
	SELECT
		penalty_id,
		driver_id,
		reason,
		amount,
		note,
		created_at
	FROM penalties
	WHERE driver_id = $1
	ORDER BY created_at DESC, penalty_id DESC;
	`
	return r.list(ctx, query, driverID)
}

func (r *PostgresPenaltyRepository) ListPenalties(ctx context.Context) ([]*domain.Penalty, error) {
	query := `
	SELECT
		penalty_id,
		driver_id,
		reason,
		amount,
		note,
		created_at
	FROM penalties
	ORDER BY created_at DESC, penalty_id DESC;
	`
	return r.list(ctx, query)
}

func (r *PostgresPenaltyRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Penalty, error) {
	if r.DB == nil {
		return nil, errors.New("penalty repository: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list penalties: query penalties table: %w", err)
	}
	defer rows.Close()

	penalties := make([]*domain.Penalty, 0, 16)
	for rows.Next() {
		var p domain.Penalty
		var reason string
		if err := rows.Scan(&p.PenaltyID, &p.DriverID, &reason, &p.Amount, &p.Note, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("list penalties: scan row: %w", err)
		}
		p.Reason, err = domain.ParsePenaltyReason(reason)
		if err != nil {
			return nil, fmt.Errorf("list penalties: penalty %d: %w", p.PenaltyID, err)
		}
		penalties = append(penalties, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list penalties: row iteration: %w", err)
	}

	return penalties, nil
}
