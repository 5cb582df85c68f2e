package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-admin-service/internal/domain"
)

// Postgres-backed implementation of the ManagerRepository port.
type PostgresManagerRepository struct{ DB *sql.DB }

func NewPostgresManagerRepository(db *sql.DB) *PostgresManagerRepository {
	return &PostgresManagerRepository{DB: db}
}

func (r *PostgresManagerRepository) GetManagerByEmail(ctx context.Context, email string) (*domain.Manager, error) {
	if r.DB == nil {
		return nil, errors.New("manager repository: DB is nil")
	}

	query := `
	SELECT
		manager_id,
		name,
		email,
		password_hash,
		role,
		created_at
	FROM managers
	WHERE email = $1;
	`
	var m domain.Manager
	var role string
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&m.ManagerID, &m.Name, &m.Email, &m.PasswordHash, &role, &m.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get manager by email: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get manager by email: %w", err)
	}

	m.Role, err = domain.ParseManagerRole(role)
	if err != nil {
		return nil, fmt.Errorf("get manager by email: %w", err)
	}
	return &m, nil
}

func (r *PostgresManagerRepository) CreateManager(ctx context.Context, m *domain.Manager) (int64, error) {
	if r.DB == nil {
		return 0, errors.New("manager repository: DB is nil")
	}

	query := `
	INSERT INTO managers (name, email, password_hash, role)
	VALUES ($1, $2, $3, $4)
	RETURNING manager_id;
	`
	var id int64
	if err := r.DB.QueryRowContext(ctx, query, m.Name, m.Email, m.PasswordHash, string(m.Role)).Scan(&id); err != nil {
		return 0, fmt.Errorf("create manager: insert: %w", err)
	}
	m.ManagerID = id
	return id, nil
}
