package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-admin-service/internal/domain"
)

// Postgres-backed implementation of the StoreRepository port.
type PostgresStoreRepository struct{ DB *sql.DB }

func NewPostgresStoreRepository(db *sql.DB) *PostgresStoreRepository {
	return &PostgresStoreRepository{DB: db}
}

func (s *PostgresStoreRepository) ListStores(ctx context.Context) ([]*domain.Store, error) {
	return s.list(ctx, `
	SELECT
		store_id,
		name,
		address,
		active
	FROM stores
	ORDER BY store_id;
	`)
}

func (s *PostgresStoreRepository) ListActiveStores(ctx context.Context) ([]*domain.Store, error) {
	return s.list(ctx, `
	SELECT
		store_id,
		name,
		address,
		active
	FROM stores
	WHERE active
	ORDER BY store_id;
	`)
}

func (s *PostgresStoreRepository) list(ctx context.Context, query string) ([]*domain.Store, error) {
	if s.DB == nil {
		return nil, errors.New("store repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: query stores table: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0, 16)
	for rows.Next() {
		var st domain.Store
		if err := rows.Scan(&st.StoreID, &st.Name, &st.Address, &st.Active); err != nil {
			return nil, fmt.Errorf("list stores: scan row: %w", err)
		}
		stores = append(stores, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stores: row iteration: %w", err)
	}

	return stores, nil
}

func (s *PostgresStoreRepository) GetStore(ctx context.Context, id int64) (*domain.Store, error) {
	if s.DB == nil {
		return nil, errors.New("store repository: DB is nil")
	}

	query := `
	SELECT
		store_id,
		name,
		address,
		active
	FROM stores
	WHERE store_id = $1;
	`
	var st domain.Store
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&st.StoreID, &st.Name, &st.Address, &st.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get store %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get store %d: %w", id, err)
	}
	return &st, nil
}

func (s *PostgresStoreRepository) CreateStore(ctx context.Context, st *domain.Store) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("store repository: DB is nil")
	}

	query := `
	INSERT INTO stores (name, address, active)
	VALUES ($1, $2, $3)
	RETURNING store_id;
	`
	var id int64
	if err := s.DB.QueryRowContext(ctx, query, st.Name, st.Address, st.Active).Scan(&id); err != nil {
		return 0, fmt.Errorf("create store: insert: %w", err)
	}
	st.StoreID = id
	return id, nil
}

func (s *PostgresStoreRepository) UpdateStore(ctx context.Context, st *domain.Store) error {
	if s.DB == nil {
		return errors.New("store repository: DB is nil")
	}

	query := `
	UPDATE stores
	SET name = $1, address = $2, active = $3
	WHERE store_id = $4;
	`
	res, err := s.DB.ExecContext(ctx, query, st.Name, st.Address, st.Active, st.StoreID)
	if err != nil {
		return fmt.Errorf("update store %d: %w", st.StoreID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update store %d: rows affected: %w", st.StoreID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update store %d: %w", st.StoreID, domain.ErrNotFound)
	}
	return nil
}
