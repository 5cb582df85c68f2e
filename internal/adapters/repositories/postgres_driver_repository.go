package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-admin-service/internal/domain"
)

// Postgres-backed implementation of the DriverRepository port.
type PostgresDriverRepository struct{ DB *sql.DB }

func NewPostgresDriverRepository(db *sql.DB) *PostgresDriverRepository {
	return &PostgresDriverRepository{DB: db}
}

func (r *PostgresDriverRepository) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	if r.DB == nil {
		return nil, errors.New("driver repository: DB is nil")
	}

	query := `
	SELECT
		driver_id,
		name,
		email,
		phone,
		status
	FROM drivers
	ORDER BY driver_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0, 32)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("list drivers: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return drivers, nil
}

func (r *PostgresDriverRepository) GetDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	if r.DB == nil {
		return nil, errors.New("driver repository: DB is nil")
	}

	query := `
	SELECT
		driver_id,
		name,
		email,
		phone,
		status
	FROM drivers
	WHERE driver_id = $1;
	`
	d, err := scanDriver(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get driver %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return d, nil
}

func (r *PostgresDriverRepository) CreateDriver(ctx context.Context, d *domain.Driver) (int64, error) {
	if r.DB == nil {
		return 0, errors.New("driver repository: DB is nil")
	}
	if !d.Status.IsValid() {
		return 0, fmt.Errorf("create driver: invalid status %q", d.Status)
	}

	query := `
	INSERT INTO drivers (name, email, phone, status)
	VALUES ($1, $2, $3, $4)
	RETURNING driver_id;
	`
	var id int64
	if err := r.DB.QueryRowContext(ctx, query, d.Name, d.Email, d.Phone, string(d.Status)).Scan(&id); err != nil {
		return 0, fmt.Errorf("create driver: insert: %w", err)
	}
	d.DriverID = id
	return id, nil
}

func (r *PostgresDriverRepository) UpdateDriver(ctx context.Context, d *domain.Driver) error {
	if r.DB == nil {
		return errors.New("driver repository: DB is nil")
	}

	query := `
	UPDATE drivers
	SET name = $1, email = $2, phone = $3
	WHERE driver_id = $4;
	`
	res, err := r.DB.ExecContext(ctx, query, d.Name, d.Email, d.Phone, d.DriverID)
	if err != nil {
		return fmt.Errorf("update driver %d: %w", d.DriverID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update driver %d: rows affected: %w", d.DriverID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update driver %d: %w", d.DriverID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresDriverRepository) UpdateDriverStatus(ctx context.Context, id int64, status domain.DriverStatus) error {
	if r.DB == nil {
		return errors.New("driver repository: DB is nil")
	}

	query := `
	UPDATE drivers
	SET status = $1
	WHERE driver_id = $2;
	`
	res, err := r.DB.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("update driver %d status: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update driver %d status: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update driver %d status: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDriver(row rowScanner) (*domain.Driver, error) {
	var d domain.Driver
	var status string
	if err := row.Scan(&d.DriverID, &d.Name, &d.Email, &d.Phone, &status); err != nil {
		return nil, err
	}
	parsed, err := domain.ParseDriverStatus(status)
	if err != nil {
		return nil, fmt.Errorf("scan driver %d: %w", d.DriverID, err)
	}
	d.Status = parsed
	return &d, nil
}
