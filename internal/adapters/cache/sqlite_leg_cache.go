package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"courier-admin-service/internal/ports"
)

// SQLite backed leg cache for local runs without Redis. Keys are expected
// to be consistent (e.g., already trimmed) by the caller.
type SqliteLegCache struct {
	DB *sql.DB
}

func NewSqliteLegCache(db *sql.DB) *SqliteLegCache {
	return &SqliteLegCache{DB: db}
}

// InitSqliteLegCache creates the cache table when missing.
func InitSqliteLegCache(db *sql.DB) error {
	if db == nil {
		return errors.New("leg cache: db is nil")
	}
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS leg_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_text TEXT NOT NULL,
		distance_meters INTEGER NOT NULL,
		duration_text TEXT NOT NULL,
		duration_seconds INTEGER NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`)
	if err != nil {
		return fmt.Errorf("leg cache: init schema: %w", err)
	}
	return nil
}

// Fetch cached legs for one origin and multiple destinations.
func (s *SqliteLegCache) GetMany(ctx context.Context, origin string, destinations []string) (map[string]ports.LegResult, error) {
	if s.DB == nil {
		return nil, errors.New("leg cache: db is nil")
	}
	if origin == "" {
		return nil, errors.New("get leg cache: origin must not be empty")
	}
	if len(destinations) == 0 {
		return map[string]ports.LegResult{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(destinations))
	ph := make([]string, 0, len(destinations))
	for _, d := range destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		uniq = append(uniq, d)
		ph = append(ph, "?")
	}
	if len(uniq) == 0 {
		return map[string]ports.LegResult{}, nil
	}

	args := make([]any, 0, 1+len(uniq))
	args = append(args, origin)
	for _, d := range uniq {
		args = append(args, d)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT destination, distance_text, distance_meters, duration_text, duration_seconds
	FROM leg_cache
	WHERE origin = ?
		AND destination IN (%s);
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get leg cache: query leg_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ports.LegResult, len(uniq))
	for rows.Next() {
		var dest string
		var r ports.LegResult
		if err := rows.Scan(&dest, &r.DistanceText, &r.DistanceValue, &r.DurationText, &r.DurationValue); err != nil {
			return nil, fmt.Errorf("get leg cache: scan rows: %w", err)
		}
		out[dest] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get leg cache: row iteration: %w", err)
	}
	return out, nil
}

// Store many cached leg results for a single origin.
func (s *SqliteLegCache) PutMany(ctx context.Context, origin string, results map[string]ports.LegResult) error {
	if s.DB == nil {
		return errors.New("leg cache: db is nil")
	}
	if origin == "" {
		return errors.New("put leg cache: origin must not be empty")
	}
	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put leg cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO leg_cache (
		origin, destination, distance_text, distance_meters, duration_text, duration_seconds
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("put leg cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for dest, r := range results {
		if strings.TrimSpace(dest) == "" {
			return errors.New("put leg cache: empty destination key")
		}
		if _, err := stmt.ExecContext(ctx, origin, dest, r.DistanceText, r.DistanceValue, r.DurationText, r.DurationValue); err != nil {
			return fmt.Errorf("put leg cache dest=%q: %w", dest, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put leg cache commit: %w", err)
	}
	return nil
}
