package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"courier-admin-service/internal/domain"
)

type storeSeed struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

type driverSeed struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type addressSeed struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

type customerSeed struct {
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Addresses []addressSeed `json:"addresses"`
}

type managerSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type seedFile struct {
	Stores    []storeSeed    `json:"stores"`
	Drivers   []driverSeed   `json:"drivers"`
	Customers []customerSeed `json:"customers"`
	Managers  []managerSeed  `json:"managers"`
}

// Populate the database with baseline data from a JSON file. Manager
// passwords arrive in plaintext and are bcrypt-hashed before insertion.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed: read %q: %w", jsonPath, err)
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed: parse json: %w", err)
	}

	stores := NewPostgresStoreRepository(db)
	drivers := NewPostgresDriverRepository(db)
	customers := NewPostgresCustomerRepository(db)
	managers := NewPostgresManagerRepository(db)

	for i, s := range data.Stores {
		if strings.TrimSpace(s.Address) == "" {
			return fmt.Errorf("seed: store at index %d: address cannot be empty", i)
		}
		st := &domain.Store{Name: s.Name, Address: s.Address, Active: s.Active}
		if _, err := stores.CreateStore(ctx, st); err != nil {
			return fmt.Errorf("seed: store %q: %w", s.Name, err)
		}
	}

	for i, d := range data.Drivers {
		status, err := domain.ParseDriverStatus(d.Status)
		if err != nil {
			return fmt.Errorf("seed: driver at index %d: %w", i, err)
		}
		dr := &domain.Driver{Name: d.Name, Email: d.Email, Phone: d.Phone, Status: status}
		if _, err := drivers.CreateDriver(ctx, dr); err != nil {
			return fmt.Errorf("seed: driver %q: %w", d.Name, err)
		}
	}

	for i, c := range data.Customers {
		if len(c.Addresses) == 0 {
			return fmt.Errorf("seed: customer at index %d: needs at least one address", i)
		}
		cu := &domain.Customer{Name: c.Name, Email: c.Email, Phone: c.Phone}
		for _, a := range c.Addresses {
			cu.Addresses = append(cu.Addresses, domain.CustomerAddress{Label: a.Label, Address: a.Address})
		}
		if _, err := customers.CreateCustomer(ctx, cu); err != nil {
			return fmt.Errorf("seed: customer %q: %w", c.Name, err)
		}
	}

	for i, m := range data.Managers {
		role, err := domain.ParseManagerRole(m.Role)
		if err != nil {
			return fmt.Errorf("seed: manager at index %d: %w", i, err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: manager %q: hash password: %w", m.Email, err)
		}
		mg := &domain.Manager{Name: m.Name, Email: m.Email, PasswordHash: string(hash), Role: role}
		if _, err := managers.CreateManager(ctx, mg); err != nil {
			return fmt.Errorf("seed: manager %q: %w", m.Email, err)
		}
	}

	return nil
}
