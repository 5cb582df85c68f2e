package domain

import (
	"errors"
	"strings"
)

// Store is a depot: the pickup location a delivery route starts from.
// The address string is used directly as the distance-oracle input.
type Store struct {
	StoreID int64
	Name    string
	Address string
	Active  bool
}

// Validate checks the fields required before a store can anchor a route plan.
func (s Store) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("store: name must be non-empty")
	}
	if strings.TrimSpace(s.Address) == "" {
		return errors.New("store: address must be non-empty")
	}
	return nil
}
