package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"courier-admin-service/internal/domain"
)

func newMock(t *testing.T) (*PostgresOrderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresOrderRepository(db), mock
}

func TestCreateOrdersCommitsWholeBatchInOneTx(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cid := int64(10)
	orders := []*domain.Order{
		{
			BatchID: "batch-1", StoreName: "Central", DriverID: 7,
			DriverName: "Dan", CustomerID: &cid, CustomerName: "Alice",
			Status: domain.OrderPending, DeliverySequence: 1,
			ReturnOption: domain.ReturnOriginal,
			CreatedAt:    now, EstimatedDeliveryTime: now.Add(20 * time.Minute),
		},
		{
			BatchID: "batch-1", StoreName: "Central", DriverID: 7,
			DriverName: "Dan", CustomerName: domain.ReturnLegCustomerName,
			Status: domain.OrderPending, DeliverySequence: 2,
			ReturnOption: domain.ReturnOriginal,
			CreatedAt:    now, EstimatedDeliveryTime: now.Add(45 * time.Minute),
		},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO orders")
	prep.ExpectQuery().WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(int64(101)))
	prep.ExpectQuery().WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(int64(102)))
	mock.ExpectCommit()

	if err := repo.CreateOrders(context.Background(), orders); err != nil {
		t.Fatalf("create orders: %v", err)
	}
	if orders[0].OrderID != 101 || orders[1].OrderID != 102 {
		t.Fatalf("generated IDs not written back: %d, %d", orders[0].OrderID, orders[1].OrderID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateOrdersRollsBackOnInsertFailure(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	orders := []*domain.Order{
		{BatchID: "batch-1", StoreName: "Central", DriverID: 7, CustomerName: "Alice",
			Status: domain.OrderPending, DeliverySequence: 1, ReturnOption: domain.ReturnNone,
			CreatedAt: now, EstimatedDeliveryTime: now},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO orders")
	prep.ExpectQuery().WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if err := repo.CreateOrders(context.Background(), orders); err == nil {
		t.Fatal("expected an error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLatestOrderByDriverMapsNoRows(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM orders").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}))

	_, err := repo.LatestOrderByDriver(context.Background(), 7)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateOrderStatusStampsMatchingColumn(t *testing.T) {
	repo, mock := newMock(t)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("SET status = \\$1, completed_at = \\$2").
		WithArgs("completed", at, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateOrderStatus(context.Background(), 5, domain.OrderCompleted, at); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("cancelled", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOrderStatus(context.Background(), 99, domain.OrderCancelled, time.Now())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
