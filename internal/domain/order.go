package domain

import (
	"fmt"
	"time"
)

// OrderStatus represents the current state of a delivery order in its lifecycle.
type OrderStatus string

const (
	OrderPending         OrderStatus = "pending"
	OrderAccepted        OrderStatus = "accepted"
	OrderOnTheWay        OrderStatus = "on_the_way"
	OrderReachedCustomer OrderStatus = "reached_customer"
	OrderCompleted       OrderStatus = "completed"
	OrderCancelled       OrderStatus = "cancelled"
)

// orderTransitions defines the state machine for order status updates.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:         {OrderAccepted, OrderCancelled},
	OrderAccepted:        {OrderOnTheWay, OrderCancelled},
	OrderOnTheWay:        {OrderReachedCustomer, OrderCancelled},
	OrderReachedCustomer: {OrderCompleted, OrderCancelled},
	OrderCompleted:       {},
	OrderCancelled:       {},
}

// IsValid returns true if the status is a recognized order status.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s OrderStatus) String() string { return string(s) }

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("parse order status: unknown value %q", s)
	}
	return status, nil
}

// Payment fields written on every planner-created order. The planning flow
// only creates pre-paid subscription deliveries, so these never vary.
const (
	PaymentConfirmation = "confirmed"
	PaymentStatus       = "completed"
	PaymentMethod       = "monthly subscription"
)

// Order is one persisted delivery record. A multi-stop plan produces one
// order per leg, all sharing a BatchID; the return leg (if any) is stored
// with a nil CustomerID and the "Return to Store" placeholder name.
type Order struct {
	OrderID     int64
	BatchID     string
	StoreName   string
	DriverID    int64
	DriverName  string
	DriverEmail string

	CustomerID   *int64
	CustomerName string

	Status              OrderStatus
	PaymentConfirmation string
	PaymentStatus       string
	PaymentMethod       string

	Start            string
	Destination      string
	Distance         string
	Time             string
	DeliverySequence int
	TotalAmount      float64
	ReturnOption     ReturnOption

	CreatedAt             time.Time
	EstimatedDeliveryTime time.Time

	// Progress timestamps, stamped as the driver advances the status.
	AcceptedAt        *time.Time
	OnTheWayAt        *time.Time
	ReachedCustomerAt *time.Time
	CompletedAt       *time.Time
}

// ReturnLegCustomerName is stored on return-leg orders, which have no customer.
const ReturnLegCustomerName = "Return to Store"

// StampStatus applies a status transition and records the matching
// progress timestamp.
func (o *Order) StampStatus(target OrderStatus, at time.Time) error {
	if !o.Status.CanTransitionTo(target) {
		return fmt.Errorf("order %d: invalid transition %s -> %s", o.OrderID, o.Status, target)
	}
	o.Status = target
	switch target {
	case OrderAccepted:
		o.AcceptedAt = &at
	case OrderOnTheWay:
		o.OnTheWayAt = &at
	case OrderReachedCustomer:
		o.ReachedCustomerAt = &at
	case OrderCompleted:
		o.CompletedAt = &at
	}
	return nil
}
