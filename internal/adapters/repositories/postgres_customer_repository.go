package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-admin-service/internal/domain"
)

// Postgres-backed implementation of the CustomerRepository port. Customers
// and their labeled addresses live in two tables; reads always return the
// customer with every address attached.
type PostgresCustomerRepository struct{ DB *sql.DB }

func NewPostgresCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{DB: db}
}

func (r *PostgresCustomerRepository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	if r.DB == nil {
		return nil, errors.New("customer repository: DB is nil")
	}

	query := `
	SELECT
		customer_id,
		name,
		email,
		phone
	FROM customers
	ORDER BY customer_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: query customers table: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0, 64)
	byID := make(map[int64]*domain.Customer, 64)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.Email, &c.Phone); err != nil {
			return nil, fmt.Errorf("list customers: scan row: %w", err)
		}
		customers = append(customers, &c)
		byID[c.CustomerID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: row iteration: %w", err)
	}

	addrQuery := `
	SELECT
		address_id,
		customer_id,
		label,
		address
	FROM customer_addresses
	ORDER BY customer_id, address_id;
	`
	addrRows, err := r.DB.QueryContext(ctx, addrQuery)
	if err != nil {
		return nil, fmt.Errorf("list customers: query addresses table: %w", err)
	}
	defer addrRows.Close()

	for addrRows.Next() {
		var a domain.CustomerAddress
		if err := addrRows.Scan(&a.AddressID, &a.CustomerID, &a.Label, &a.Address); err != nil {
			return nil, fmt.Errorf("list customers: scan address row: %w", err)
		}
		if c, ok := byID[a.CustomerID]; ok {
			c.Addresses = append(c.Addresses, a)
		}
	}
	if err := addrRows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: address row iteration: %w", err)
	}

	return customers, nil
}

func (r *PostgresCustomerRepository) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	if r.DB == nil {
		return nil, errors.New("customer repository: DB is nil")
	}

	query := `
	SELECT
		customer_id,
		name,
		email,
		phone
	FROM customers
	WHERE customer_id = $1;
	`
	var c domain.Customer
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.CustomerID, &c.Name, &c.Email, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get customer %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}

	addrQuery := `
	SELECT
		address_id,
		customer_id,
		label,
		address
	FROM customer_addresses
	WHERE customer_id = $1
	ORDER BY address_id;
	`
	rows, err := r.DB.QueryContext(ctx, addrQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %d: query addresses: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.CustomerAddress
		if err := rows.Scan(&a.AddressID, &a.CustomerID, &a.Label, &a.Address); err != nil {
			return nil, fmt.Errorf("get customer %d: scan address row: %w", id, err)
		}
		c.Addresses = append(c.Addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get customer %d: address row iteration: %w", id, err)
	}

	return &c, nil
}

func (r *PostgresCustomerRepository) CreateCustomer(ctx context.Context, c *domain.Customer) (int64, error) {
	if r.DB == nil {
		return 0, errors.New("customer repository: DB is nil")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("create customer: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO customers (name, email, phone)
	VALUES ($1, $2, $3)
	RETURNING customer_id;
	`
	var id int64
	if err := tx.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone).Scan(&id); err != nil {
		return 0, fmt.Errorf("create customer: insert: %w", err)
	}

	addrQuery := `
	INSERT INTO customer_addresses (customer_id, label, address)
	VALUES ($1, $2, $3)
	RETURNING address_id;
	`
	for i := range c.Addresses {
		a := &c.Addresses[i]
		a.CustomerID = id
		if err := tx.QueryRowContext(ctx, addrQuery, id, a.Label, a.Address).Scan(&a.AddressID); err != nil {
			return 0, fmt.Errorf("create customer: insert address %q: %w", a.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("create customer: commit tx: %w", err)
	}

	c.CustomerID = id
	return id, nil
}

func (r *PostgresCustomerRepository) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	if r.DB == nil {
		return errors.New("customer repository: DB is nil")
	}

	query := `
	UPDATE customers
	SET name = $1, email = $2, phone = $3
	WHERE customer_id = $4;
	`
	res, err := r.DB.ExecContext(ctx, query, c.Name, c.Email, c.Phone, c.CustomerID)
	if err != nil {
		return fmt.Errorf("update customer %d: %w", c.CustomerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update customer %d: rows affected: %w", c.CustomerID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update customer %d: %w", c.CustomerID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresCustomerRepository) AddAddress(ctx context.Context, a *domain.CustomerAddress) (int64, error) {
	if r.DB == nil {
		return 0, errors.New("customer repository: DB is nil")
	}

	query := `
	INSERT INTO customer_addresses (customer_id, label, address)
	VALUES ($1, $2, $3)
	RETURNING address_id;
	`
	var id int64
	if err := r.DB.QueryRowContext(ctx, query, a.CustomerID, a.Label, a.Address).Scan(&id); err != nil {
		return 0, fmt.Errorf("add address for customer %d: %w", a.CustomerID, err)
	}
	a.AddressID = id
	return id, nil
}
