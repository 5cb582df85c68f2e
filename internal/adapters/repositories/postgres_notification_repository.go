package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-admin-service/internal/domain"
)

// Postgres-backed implementation of the NotificationRepository port.
type PostgresNotificationRepository struct{ DB *sql.DB }

func NewPostgresNotificationRepository(db *sql.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{DB: db}
}

func (r *PostgresNotificationRepository) CreateNotifications(ctx context.Context, ns []*domain.Notification) error {
	if r.DB == nil {
		return errors.New("notification repository: DB is nil")
	}
	if len(ns) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create notifications: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO notifications (driver_id, title, body)
	VALUES ($1, $2, $3)
	RETURNING notification_id;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("create notifications: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, n := range ns {
		if err := stmt.QueryRowContext(ctx, n.DriverID, n.Title, n.Body).Scan(&n.NotificationID); err != nil {
			return fmt.Errorf("create notifications: insert for driver %d: %w", n.DriverID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create notifications: commit tx: %w", err)
	}
	return nil
}

func (r *PostgresNotificationRepository) ListNotificationsByDriver(ctx context.Context, driverID int64) ([]*domain.Notification, error) {
	if r.DB == nil {
		return nil, errors.New("notification repository: DB is nil")
	}

	query := `
	SELECT
		notification_id,
		driver_id,
		title,
		body,
		read,
		created_at
	FROM notifications
	WHERE driver_id = $1
	ORDER BY created_at DESC, notification_id DESC;
	`
	rows, err := r.DB.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("list notifications for driver %d: %w", driverID, err)
	}
	defer rows.Close()

	ns := make([]*domain.Notification, 0, 16)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.NotificationID, &n.DriverID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("list notifications for driver %d: scan row: %w", driverID, err)
		}
		ns = append(ns, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications for driver %d: row iteration: %w", driverID, err)
	}

	return ns, nil
}

func (r *PostgresNotificationRepository) MarkNotificationRead(ctx context.Context, id int64) error {
	if r.DB == nil {
		return errors.New("notification repository: DB is nil")
	}

	query := `
	UPDATE notifications
	SET read = TRUE
	WHERE notification_id = $1;
	`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark notification %d read: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark notification %d read: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("mark notification %d read: %w", id, domain.ErrNotFound)
	}
	return nil
}
