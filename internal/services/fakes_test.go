package services

import (
	"context"
	"time"

	"courier-admin-service/internal/domain"
)

type fakeStoreRepo struct {
	stores []*domain.Store
}

func (f *fakeStoreRepo) ListStores(context.Context) ([]*domain.Store, error) {
	return f.stores, nil
}

func (f *fakeStoreRepo) ListActiveStores(context.Context) ([]*domain.Store, error) {
	out := make([]*domain.Store, 0, len(f.stores))
	for _, s := range f.stores {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStoreRepo) GetStore(_ context.Context, id int64) (*domain.Store, error) {
	for _, s := range f.stores {
		if s.StoreID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStoreRepo) CreateStore(_ context.Context, s *domain.Store) (int64, error) {
	s.StoreID = int64(len(f.stores) + 1)
	f.stores = append(f.stores, s)
	return s.StoreID, nil
}

func (f *fakeStoreRepo) UpdateStore(context.Context, *domain.Store) error { return nil }

type fakeCustomerRepo struct {
	customers []*domain.Customer
}

func (f *fakeCustomerRepo) ListCustomers(context.Context) ([]*domain.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerRepo) GetCustomer(_ context.Context, id int64) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.CustomerID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCustomerRepo) CreateCustomer(_ context.Context, c *domain.Customer) (int64, error) {
	f.customers = append(f.customers, c)
	return c.CustomerID, nil
}

func (f *fakeCustomerRepo) UpdateCustomer(context.Context, *domain.Customer) error { return nil }

func (f *fakeCustomerRepo) AddAddress(context.Context, *domain.CustomerAddress) (int64, error) {
	return 0, nil
}

type fakeDriverRepo struct {
	drivers []*domain.Driver
}

func (f *fakeDriverRepo) ListDrivers(context.Context) ([]*domain.Driver, error) {
	return f.drivers, nil
}

func (f *fakeDriverRepo) GetDriver(_ context.Context, id int64) (*domain.Driver, error) {
	for _, d := range f.drivers {
		if d.DriverID == id {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDriverRepo) CreateDriver(_ context.Context, d *domain.Driver) (int64, error) {
	f.drivers = append(f.drivers, d)
	return d.DriverID, nil
}

func (f *fakeDriverRepo) UpdateDriver(context.Context, *domain.Driver) error { return nil }

func (f *fakeDriverRepo) UpdateDriverStatus(context.Context, int64, domain.DriverStatus) error {
	return nil
}

type fakeOrderRepo struct {
	latest  map[int64]*domain.Order
	created []*domain.Order
	failOn  error
}

func (f *fakeOrderRepo) CreateOrders(_ context.Context, orders []*domain.Order) error {
	if f.failOn != nil {
		return f.failOn
	}
	f.created = append(f.created, orders...)
	return nil
}

func (f *fakeOrderRepo) GetOrder(context.Context, int64) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeOrderRepo) ListOrdersByDriver(context.Context, int64) ([]*domain.Order, error) {
	return f.created, nil
}

func (f *fakeOrderRepo) ListOrdersByBatch(context.Context, string) ([]*domain.Order, error) {
	return f.created, nil
}

func (f *fakeOrderRepo) LatestOrderByDriver(_ context.Context, driverID int64) (*domain.Order, error) {
	if o, ok := f.latest[driverID]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrderRepo) UpdateOrderStatus(context.Context, int64, domain.OrderStatus, time.Time) error {
	return nil
}

type fakeNotificationRepo struct {
	created []*domain.Notification
	failOn  error
}

func (f *fakeNotificationRepo) CreateNotifications(_ context.Context, ns []*domain.Notification) error {
	if f.failOn != nil {
		return f.failOn
	}
	f.created = append(f.created, ns...)
	return nil
}

func (f *fakeNotificationRepo) ListNotificationsByDriver(context.Context, int64) ([]*domain.Notification, error) {
	return f.created, nil
}

func (f *fakeNotificationRepo) MarkNotificationRead(context.Context, int64) error { return nil }
