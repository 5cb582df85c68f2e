package domain

import (
	"fmt"
	"time"
)

// ManagerRole is a closed enumeration of dashboard access levels.
type ManagerRole string

const (
	RoleAdmin   ManagerRole = "admin"
	RoleSupport ManagerRole = "support"
)

func ParseManagerRole(s string) (ManagerRole, error) {
	switch ManagerRole(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleSupport:
		return RoleSupport, nil
	default:
		return "", fmt.Errorf("parse manager role: unknown value %q", s)
	}
}

// Manager is a dashboard operator account.
// PasswordHash holds a bcrypt digest, never the plaintext.
type Manager struct {
	ManagerID    int64
	Name         string
	Email        string
	PasswordHash string
	Role         ManagerRole
	CreatedAt    time.Time
}
