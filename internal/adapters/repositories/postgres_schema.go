package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStoresQuery := `
	CREATE TABLE IF NOT EXISTS stores (
		store_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	createCustomersQuery := `
	CREATE TABLE IF NOT EXISTS customers (
		customer_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT ''
	);
	`

	createCustomerAddressesQuery := `
	CREATE TABLE IF NOT EXISTS customer_addresses (
		address_id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers(customer_id) ON DELETE CASCADE,
		label TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL
	);
	`

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		driver_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active'
	);
	`

	createManagersQuery := `
	CREATE TABLE IF NOT EXISTS managers (
		manager_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'support',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id BIGSERIAL PRIMARY KEY,
		batch_id TEXT NOT NULL,
		store_name TEXT NOT NULL,
		driver_id BIGINT NOT NULL,
		driver_name TEXT NOT NULL,
		driver_email TEXT NOT NULL DEFAULT '',
		customer_id BIGINT,
		customer_name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_confirmation TEXT NOT NULL,
		payment_status TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		start_address TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance TEXT NOT NULL DEFAULT '',
		time_text TEXT NOT NULL DEFAULT '',
		delivery_sequence INT NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		return_option TEXT NOT NULL DEFAULT 'none',
		created_at TIMESTAMPTZ NOT NULL,
		estimated_delivery_time TIMESTAMPTZ NOT NULL,
		accepted_at TIMESTAMPTZ,
		on_the_way_at TIMESTAMPTZ,
		reached_customer_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ
	);
	`

	createNotificationsQuery := `
	CREATE TABLE IF NOT EXISTS notifications (
		notification_id BIGSERIAL PRIMARY KEY,
		driver_id BIGINT NOT NULL,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createPenaltiesQuery := `
	CREATE TABLE IF NOT EXISTS penalties (
		penalty_id BIGSERIAL PRIMARY KEY,
		driver_id BIGINT NOT NULL,
		reason TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createAnnouncementsQuery := `
	CREATE TABLE IF NOT EXISTS announcements (
		announcement_id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		audience TEXT NOT NULL DEFAULT 'all',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createOrderIndexesQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_driver_created
	ON orders(driver_id, created_at DESC);
	`

	createBatchIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_batch
	ON orders(batch_id);
	`

	statements := []string{
		createStoresQuery,
		createCustomersQuery,
		createCustomerAddressesQuery,
		createDriversQuery,
		createManagersQuery,
		createOrdersQuery,
		createNotificationsQuery,
		createPenaltiesQuery,
		createAnnouncementsQuery,
		createOrderIndexesQuery,
		createBatchIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
