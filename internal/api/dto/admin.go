package dto

import "time"

type StoreRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Active  *bool  `json:"active"`
}

type StoreResponse struct {
	StoreID int64  `json:"store_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

type AddressRequest struct {
	Label   string `json:"label"`
	Address string `json:"address" binding:"required"`
}

type AddressResponse struct {
	AddressID int64  `json:"address_id"`
	Label     string `json:"label"`
	Address   string `json:"address"`
}

type CustomerRequest struct {
	Name      string           `json:"name" binding:"required"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Addresses []AddressRequest `json:"addresses"`
}

type CustomerResponse struct {
	CustomerID int64             `json:"customer_id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Addresses  []AddressResponse `json:"addresses"`
}

type DriverRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type DriverStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DriverResponse struct {
	DriverID int64  `json:"driver_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderResponse struct {
	OrderID     int64  `json:"order_id"`
	BatchID     string `json:"batch_id"`
	StoreName   string `json:"store_name"`
	DriverID    int64  `json:"driver_id"`
	DriverName  string `json:"driver_name"`
	DriverEmail string `json:"driver_email"`

	CustomerID   *int64 `json:"customer_id"`
	CustomerName string `json:"customer_name"`

	Status              string `json:"status"`
	PaymentConfirmation string `json:"payment_confirmation"`
	PaymentStatus       string `json:"payment_status"`
	PaymentMethod       string `json:"payment_method"`

	Start            string  `json:"start"`
	Destination      string  `json:"destination"`
	Distance         string  `json:"distance"`
	Time             string  `json:"time"`
	DeliverySequence int     `json:"delivery_sequence"`
	TotalAmount      float64 `json:"total_amount"`
	ReturnOption     string  `json:"return_option"`

	CreatedAt             time.Time  `json:"created_at"`
	EstimatedDeliveryTime time.Time  `json:"estimated_delivery_time"`
	AcceptedAt            *time.Time `json:"accepted_at,omitempty"`
	OnTheWayAt            *time.Time `json:"on_the_way_at,omitempty"`
	ReachedCustomerAt     *time.Time `json:"reached_customer_at,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
}

type PenaltyRequest struct {
	DriverID int64   `json:"driver_id" binding:"required"`
	Reason   string  `json:"reason" binding:"required"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
}

type PenaltyResponse struct {
	PenaltyID int64     `json:"penalty_id"`
	DriverID  int64     `json:"driver_id"`
	Reason    string    `json:"reason"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type AnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Audience string `json:"audience"`
}

type AnnouncementResponse struct {
	AnnouncementID int64     `json:"announcement_id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Audience       string    `json:"audience"`
	CreatedAt      time.Time `json:"created_at"`
}

type NotificationResponse struct {
	NotificationID int64     `json:"notification_id"`
	DriverID       int64     `json:"driver_id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}
