package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"courier-admin-service/internal/domain"
)

// Postgres-backed implementation of the OrderRepository port. CreateOrders
// commits all rows of one confirmed plan in a single transaction; the
// notification write that follows it is a separate commit with no
// compensating cleanup.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

const orderColumns = `
	order_id,
	batch_id,
	store_name,
	driver_id,
	driver_name,
	driver_email,
	customer_id,
	customer_name,
	status,
	payment_confirmation,
	payment_status,
	payment_method,
	start_address,
	destination,
	distance,
	time_text,
	delivery_sequence,
	total_amount,
	return_option,
	created_at,
	estimated_delivery_time,
	accepted_at,
	on_the_way_at,
	reached_customer_at,
	completed_at`

func (r *PostgresOrderRepository) CreateOrders(ctx context.Context, orders []*domain.Order) error {
	if r.DB == nil {
		return errors.New("order repository: DB is nil")
	}
	if len(orders) == 0 {
		return errors.New("create orders: empty batch")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO orders (
		batch_id,
		store_name,
		driver_id,
		driver_name,
		driver_email,
		customer_id,
		customer_name,
		status,
		payment_confirmation,
		payment_status,
		payment_method,
		start_address,
		destination,
		distance,
		time_text,
		delivery_sequence,
		total_amount,
		return_option,
		created_at,
		estimated_delivery_time
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
	        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	RETURNING order_id;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("create orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range orders {
		var customerID sql.NullInt64
		if o.CustomerID != nil {
			customerID = sql.NullInt64{Int64: *o.CustomerID, Valid: true}
		}

		err := stmt.QueryRowContext(ctx,
			o.BatchID,
			o.StoreName,
			o.DriverID,
			o.DriverName,
			o.DriverEmail,
			customerID,
			o.CustomerName,
			string(o.Status),
			o.PaymentConfirmation,
			o.PaymentStatus,
			o.PaymentMethod,
			o.Start,
			o.Destination,
			o.Distance,
			o.Time,
			o.DeliverySequence,
			o.TotalAmount,
			string(o.ReturnOption),
			o.CreatedAt,
			o.EstimatedDeliveryTime,
		).Scan(&o.OrderID)
		if err != nil {
			return fmt.Errorf("create orders: insert sequence %d of batch %s: %w", o.DeliverySequence, o.BatchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create orders: commit tx: %w", err)
	}
	return nil
}

func (r *PostgresOrderRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	if r.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `SELECT` + orderColumns + `
	FROM orders
	WHERE order_id = $1;
	`
	o, err := scanOrder(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) ListOrdersByDriver(ctx context.Context, driverID int64) ([]*domain.Order, error) {
	query := `SELECT` + orderColumns + `
	FROM orders
	WHERE driver_id = $1
	ORDER BY created_at DESC, delivery_sequence;
	`
	return r.listOrders(ctx, query, driverID)
}

func (r *PostgresOrderRepository) ListOrdersByBatch(ctx context.Context, batchID string) ([]*domain.Order, error) {
	query := `SELECT` + orderColumns + `
	FROM orders
	WHERE batch_id = $1
	ORDER BY delivery_sequence;
	`
	return r.listOrders(ctx, query, batchID)
}

func (r *PostgresOrderRepository) listOrders(ctx context.Context, query string, arg any) ([]*domain.Order, error) {
	if r.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, 16)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

func (r *PostgresOrderRepository) LatestOrderByDriver(ctx context.Context, driverID int64) (*domain.Order, error) {
	if r.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `SELECT` + orderColumns + `
	FROM orders
	WHERE driver_id = $1
	ORDER BY created_at DESC, order_id DESC
	LIMIT 1;
	`
	o, err := scanOrder(r.DB.QueryRowContext(ctx, query, driverID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("latest order for driver %d: %w", driverID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("latest order for driver %d: %w", driverID, err)
	}
	return o, nil
}

// UpdateOrderStatus writes the new status together with the progress
// timestamp that belongs to it. Cancellation has no timestamp column.
func (r *PostgresOrderRepository) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus, at time.Time) error {
	if r.DB == nil {
		return errors.New("order repository: DB is nil")
	}

	var query string
	switch status {
	case domain.OrderAccepted:
		query = `UPDATE orders SET status = $1, accepted_at = $2 WHERE order_id = $3;`
	case domain.OrderOnTheWay:
		query = `UPDATE orders SET status = $1, on_the_way_at = $2 WHERE order_id = $3;`
	case domain.OrderReachedCustomer:
		query = `UPDATE orders SET status = $1, reached_customer_at = $2 WHERE order_id = $3;`
	case domain.OrderCompleted:
		query = `UPDATE orders SET status = $1, completed_at = $2 WHERE order_id = $3;`
	case domain.OrderCancelled:
		res, err := r.DB.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE order_id = $2;`, string(status), id)
		if err != nil {
			return fmt.Errorf("update order %d status: %w", id, err)
		}
		return checkAffected(res, id)
	default:
		return fmt.Errorf("update order %d status: invalid target %q", id, status)
	}

	res, err := r.DB.ExecContext(ctx, query, string(status), at, id)
	if err != nil {
		return fmt.Errorf("update order %d status: %w", id, err)
	}
	return checkAffected(res, id)
}

func checkAffected(res sql.Result, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order %d status: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update order %d status: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	var customerID sql.NullInt64
	var status, returnOption string
	var accepted, onTheWay, reached, completed sql.NullTime

	err := row.Scan(
		&o.OrderID,
		&o.BatchID,
		&o.StoreName,
		&o.DriverID,
		&o.DriverName,
		&o.DriverEmail,
		&customerID,
		&o.CustomerName,
		&status,
		&o.PaymentConfirmation,
		&o.PaymentStatus,
		&o.PaymentMethod,
		&o.Start,
		&o.Destination,
		&o.Distance,
		&o.Time,
		&o.DeliverySequence,
		&o.TotalAmount,
		&returnOption,
		&o.CreatedAt,
		&o.EstimatedDeliveryTime,
		&accepted,
		&onTheWay,
		&reached,
		&completed,
	)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		v := customerID.Int64
		o.CustomerID = &v
	}
	o.Status, err = domain.ParseOrderStatus(status)
	if err != nil {
		return nil, fmt.Errorf("scan order %d: %w", o.OrderID, err)
	}
	o.ReturnOption, err = domain.ParseReturnOption(returnOption)
	if err != nil {
		return nil, fmt.Errorf("scan order %d: %w", o.OrderID, err)
	}

	o.AcceptedAt = nullableTime(accepted)
	o.OnTheWayAt = nullableTime(onTheWay)
	o.ReachedCustomerAt = nullableTime(reached)
	o.CompletedAt = nullableTime(completed)
	return &o, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
