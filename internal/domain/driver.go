package domain

import "fmt"

// DriverStatus is a closed enumeration; drivers are either available for
// assignment or withdrawn from it.
type DriverStatus string

const (
	DriverActive   DriverStatus = "active"
	DriverInactive DriverStatus = "inactive"
)

// IsValid returns true if the status is a recognized driver status.
func (s DriverStatus) IsValid() bool {
	return s == DriverActive || s == DriverInactive
}

// ParseDriverStatus maps an external string onto the enumeration.
func ParseDriverStatus(s string) (DriverStatus, error) {
	status := DriverStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("parse driver status: unknown value %q", s)
	}
	return status, nil
}

// Driver is a courier that route plans are assigned to.
type Driver struct {
	DriverID int64
	Name     string
	Email    string
	Phone    string
	Status   DriverStatus
}
