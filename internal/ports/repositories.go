package ports

import (
	"context"
	"time"

	"courier-admin-service/internal/domain"
)

// Boundary for depot (store) rows.
type StoreRepository interface {
	ListStores(ctx context.Context) ([]*domain.Store, error)
	// ListActiveStores feeds the nearest-depot return search.
	ListActiveStores(ctx context.Context) ([]*domain.Store, error)
	GetStore(ctx context.Context, id int64) (*domain.Store, error)
	CreateStore(ctx context.Context, s *domain.Store) (int64, error)
	UpdateStore(ctx context.Context, s *domain.Store) error
}

// Boundary for customer rows and their labeled addresses.
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, c *domain.Customer) (int64, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	AddAddress(ctx context.Context, a *domain.CustomerAddress) (int64, error)
}

// Boundary for driver rows.
type DriverRepository interface {
	ListDrivers(ctx context.Context) ([]*domain.Driver, error)
	GetDriver(ctx context.Context, id int64) (*domain.Driver, error)
	CreateDriver(ctx context.Context, d *domain.Driver) (int64, error)
	UpdateDriver(ctx context.Context, d *domain.Driver) error
	UpdateDriverStatus(ctx context.Context, id int64, status domain.DriverStatus) error
}

// Boundary for manager accounts.
type ManagerRepository interface {
	GetManagerByEmail(ctx context.Context, email string) (*domain.Manager, error)
	CreateManager(ctx context.Context, m *domain.Manager) (int64, error)
}

// Boundary for persisted delivery orders.
type OrderRepository interface {
	// CreateOrders persists all rows of one confirmed plan. There is no
	// partial-commit cleanup across subsequent notification writes.
	CreateOrders(ctx context.Context, orders []*domain.Order) error
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrdersByDriver(ctx context.Context, driverID int64) ([]*domain.Order, error)
	ListOrdersByBatch(ctx context.Context, batchID string) ([]*domain.Order, error)
	// LatestOrderByDriver returns the driver's most recent order, the seed
	// for schedule base-time selection. domain.ErrNotFound when none exists.
	LatestOrderByDriver(ctx context.Context, driverID int64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus, at time.Time) error
}

// Boundary for driver notifications.
type NotificationRepository interface {
	CreateNotifications(ctx context.Context, ns []*domain.Notification) error
	ListNotificationsByDriver(ctx context.Context, driverID int64) ([]*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

// Boundary for driver penalties.
type PenaltyRepository interface {
	CreatePenalty(ctx context.Context, p *domain.Penalty) (int64, error)
	ListPenaltiesByDriver(ctx context.Context, driverID int64) ([]*domain.Penalty, error)
	ListPenalties(ctx context.Context) ([]*domain.Penalty, error)
}

// Boundary for dashboard announcements.
type AnnouncementRepository interface {
	CreateAnnouncement(ctx context.Context, a *domain.Announcement) (int64, error)
	ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
}

// PreferenceStore is a small per-manager key-value store, used for the
// "last selected depot" preference. Injected rather than ambient so planner
// behavior stays testable.
type PreferenceStore interface {
	GetPreference(ctx context.Context, key string) (string, bool, error)
	SetPreference(ctx context.Context, key, value string) error
}
