package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-admin-service/internal/domain"
)

// Postgres-backed implementation of the AnnouncementRepository port.
type PostgresAnnouncementRepository struct{ DB *sql.DB }

func NewPostgresAnnouncementRepository(db *sql.DB) *PostgresAnnouncementRepository {
	return &PostgresAnnouncementRepository{DB: db}
}

func (r *PostgresAnnouncementRepository) CreateAnnouncement(ctx context.Context, a *domain.Announcement) (int64, error) {
	if r.DB == nil {
		return 0, errors.New("announcement repository: DB is nil")
	}

	query := `
	INSERT INTO announcements (title, body, audience)
	VALUES ($1, $2, $3)
	RETURNING announcement_id;
	`
	var id int64
	if err := r.DB.QueryRowContext(ctx, query, a.Title, a.Body, a.Audience).Scan(&id); err != nil {
		return 0, fmt.Errorf("create announcement: insert: %w", err)
	}
	a.AnnouncementID = id
	return id, nil
}

func (r *PostgresAnnouncementRepository) ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	if r.DB == nil {
		return nil, errors.New("announcement repository: DB is nil")
	}

	query := `
	SELECT
		announcement_id,
		title,
		body,
		audience,
		created_at
	FROM announcements
	ORDER BY created_at DESC, announcement_id DESC;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list announcements: query announcements table: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Announcement, 0, 16)
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.AnnouncementID, &a.Title, &a.Body, &a.Audience, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("list announcements: scan row: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list announcements: row iteration: %w", err)
	}

	return out, nil
}

func (r *PostgresAnnouncementRepository) DeleteAnnouncement(ctx context.Context, id int64) error {
	if r.DB == nil {
		return errors.New("announcement repository: DB is nil")
	}

	res, err := r.DB.ExecContext(ctx, `DELETE FROM announcements WHERE announcement_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete announcement %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete announcement %d: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete announcement %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
