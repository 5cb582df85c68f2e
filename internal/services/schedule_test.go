package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"courier-admin-service/internal/domain"
)

func testEstimator(orders *fakeOrderRepo, now time.Time) *Estimator {
	e := NewEstimator(orders, zap.NewNop())
	e.now = func() time.Time { return now }
	return e
}

func TestBaseTimeNoPriorOrder(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	e := testEstimator(&fakeOrderRepo{latest: map[int64]*domain.Order{}}, now)

	base, source, err := e.BaseTime(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != domain.SourceNow {
		t.Fatalf("source = %s, want now", source)
	}
	if !base.Equal(now) {
		t.Fatalf("base = %v, want %v", base, now)
	}
}

func TestBaseTimeFutureCompletionGetsBuffer(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	completed := now.Add(2 * time.Minute)
	e := testEstimator(&fakeOrderRepo{latest: map[int64]*domain.Order{
		7: {OrderID: 1, DriverID: 7, CompletedAt: &completed},
	}}, now)

	base, source, err := e.BaseTime(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != domain.SourceCompleted {
		t.Fatalf("source = %s, want completed", source)
	}
	want := completed.Add(priorOrderBuffer)
	if !base.Equal(want) {
		t.Fatalf("base = %v, want completion + buffer %v", base, want)
	}
}

func TestBaseTimeStaleCompletionFallsBackToNow(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	completed := now.Add(-10 * time.Minute)
	e := testEstimator(&fakeOrderRepo{latest: map[int64]*domain.Order{
		7: {OrderID: 1, DriverID: 7, CompletedAt: &completed},
	}}, now)

	base, source, err := e.BaseTime(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != domain.SourceNow {
		t.Fatalf("source = %s, want now after stale guard", source)
	}
	if !base.Equal(now) {
		t.Fatalf("base = %v, want %v", base, now)
	}
}

func TestBaseTimeReachedCustomerAddsHandOff(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	reached := now.Add(-3 * time.Minute)
	e := testEstimator(&fakeOrderRepo{latest: map[int64]*domain.Order{
		7: {OrderID: 1, DriverID: 7, ReachedCustomerAt: &reached},
	}}, now)

	base, source, err := e.BaseTime(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != domain.SourceReachedCustomer {
		t.Fatalf("source = %s, want reached_customer", source)
	}
	want := reached.Add(handOffDelay).Add(priorOrderBuffer)
	if !base.Equal(want) {
		t.Fatalf("base = %v, want reached + hand-off + buffer %v", base, want)
	}
}

func TestBaseTimeFarFutureIsClamped(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	completed := now.Add(30 * 24 * time.Hour)
	e := testEstimator(&fakeOrderRepo{latest: map[int64]*domain.Order{
		7: {OrderID: 1, DriverID: 7, CompletedAt: &completed},
	}}, now)

	base, _, err := e.BaseTime(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := now.Add(maxFutureWindow).Add(priorOrderBuffer)
	if !base.Equal(want) {
		t.Fatalf("base = %v, want clamped %v", base, want)
	}
}

func TestEstimatePropagatesThroughLegs(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	e := testEstimator(&fakeOrderRepo{latest: map[int64]*domain.Order{}}, now)

	cid := int64(10)
	plan := &domain.RoutePlan{
		Depot:        domain.Store{StoreID: 1, Name: "Central", Address: "D", Active: true},
		ReturnOption: domain.ReturnNone,
		Legs: []domain.Leg{
			{Origin: "D", Destination: "A", CustomerID: &cid, CustomerName: "Alice", DurationText: "20 minutes", SequenceIndex: 1},
			{Origin: "A", Destination: "B", CustomerID: &cid, CustomerName: "Bob", DurationText: "garbage", SequenceIndex: 2},
		},
	}

	est, err := e.Estimate(context.Background(), plan, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(est.Legs) != 2 {
		t.Fatalf("expected 2 leg schedules, got %d", len(est.Legs))
	}

	firstArrival := now.Add(20 * time.Minute)
	if !est.Legs[0].EstimatedArrival.Equal(firstArrival) {
		t.Fatalf("leg 1 arrival = %v, want %v", est.Legs[0].EstimatedArrival, firstArrival)
	}

	// Unparseable duration substitutes the default, after the inter-stop buffer.
	secondStart := firstArrival.Add(interStopBuffer)
	if !est.Legs[1].StartedAt.Equal(secondStart) {
		t.Fatalf("leg 2 start = %v, want %v", est.Legs[1].StartedAt, secondStart)
	}
	secondArrival := secondStart.Add(defaultLegMinutes * time.Minute)
	if !est.Legs[1].EstimatedArrival.Equal(secondArrival) {
		t.Fatalf("leg 2 arrival = %v, want %v", est.Legs[1].EstimatedArrival, secondArrival)
	}
}

func TestEstimateCapsAbsurdLegDurations(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	e := testEstimator(&fakeOrderRepo{latest: map[int64]*domain.Order{}}, now)

	cid := int64(10)
	plan := &domain.RoutePlan{
		Depot:        domain.Store{StoreID: 1, Name: "Central", Address: "D", Active: true},
		ReturnOption: domain.ReturnNone,
		Legs: []domain.Leg{
			{Origin: "D", Destination: "A", CustomerID: &cid, CustomerName: "Alice", DurationText: "9 days", SequenceIndex: 1},
		},
	}

	est, err := e.Estimate(context.Background(), plan, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := now.Add(maxLegMinutes * time.Minute)
	if !est.Legs[0].EstimatedArrival.Equal(want) {
		t.Fatalf("arrival = %v, want capped %v", est.Legs[0].EstimatedArrival, want)
	}
}
