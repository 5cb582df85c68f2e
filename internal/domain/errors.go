package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// ErrSessionBusy is returned when a planning operation is invoked while one
// is already in flight for the same session. Callers treat it as a no-op.
var ErrSessionBusy = errors.New("planning operation already in progress")

// LegQueryError aborts an entire planning operation: one unresolvable leg
// makes the whole plan unusable, partial routes are never kept.
type LegQueryError struct {
	Origin      string
	Destination string
	Err         error
}

func (e *LegQueryError) Error() string {
	return fmt.Sprintf("leg query %q -> %q: %v", e.Origin, e.Destination, e.Err)
}

func (e *LegQueryError) Unwrap() error { return e.Err }
