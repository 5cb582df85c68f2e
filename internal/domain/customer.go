package domain

import (
	"fmt"
	"strings"
)

// Customer is a delivery recipient. A customer may have several labeled
// addresses; exactly one is selected per planning session.
type Customer struct {
	CustomerID int64
	Name       string
	Email      string
	Phone      string
	Addresses  []CustomerAddress
}

// A labeled address belonging to a customer ("home", "office", ...).
type CustomerAddress struct {
	AddressID  int64
	CustomerID int64
	Label      string
	Address    string
}

// Destination pairs a customer with the address chosen for the current plan.
type Destination struct {
	CustomerID   int64
	CustomerName string
	Address      string
}

// NewDestination builds a Destination, enforcing the non-empty-address rule
// for anything included in a route.
func NewDestination(customerID int64, name, address string) (Destination, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Destination{}, fmt.Errorf("destination: customer %d has empty selected address", customerID)
	}
	return Destination{
		CustomerID:   customerID,
		CustomerName: name,
		Address:      address,
	}, nil
}
