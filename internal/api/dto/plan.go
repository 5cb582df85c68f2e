package dto

import "time"

type SessionResponse struct {
	SessionID        string `json:"session_id"`
	State            string `json:"state"`
	SuggestedStoreID int64  `json:"suggested_store_id,omitempty"`

	Depot    *StoreResponse  `json:"depot,omitempty"`
	Driver   *DriverResponse `json:"driver,omitempty"`
	Legs     []LegResponse   `json:"legs,omitempty"`
	Schedule *Schedule       `json:"schedule,omitempty"`
}

type SelectDepotRequest struct {
	StoreID int64 `json:"store_id" binding:"required"`
}

type DestinationPick struct {
	CustomerID int64   `json:"customer_id" binding:"required"`
	AddressID  int64   `json:"address_id" binding:"required"`
	Amount     float64 `json:"amount"`
}

type SelectDestinationsRequest struct {
	DriverID     int64             `json:"driver_id" binding:"required"`
	Destinations []DestinationPick `json:"destinations" binding:"required,min=1"`
}

type ComputeRoutesRequest struct {
	ReturnOption string `json:"return_option"`
}

type ReorderRequest struct {
	LegIndex  int    `json:"leg_index"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

type LegResponse struct {
	SequenceIndex int    `json:"sequence_index"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	CustomerID    *int64 `json:"customer_id,omitempty"`
	CustomerName  string `json:"customer_name"`
	Distance      string `json:"distance"`
	DistanceValue int    `json:"distance_value"`
	Duration      string `json:"duration"`
	DurationValue int    `json:"duration_value"`
	IsReturn      bool   `json:"is_return"`
	DepotFallback bool   `json:"depot_fallback,omitempty"`
}

type Schedule struct {
	Source   string        `json:"source"`
	BaseTime time.Time     `json:"base_time"`
	Legs     []LegSchedule `json:"legs"`
}

type LegSchedule struct {
	SequenceIndex    int       `json:"sequence_index"`
	StartedAt        time.Time `json:"started_at"`
	EstimatedArrival time.Time `json:"estimated_arrival"`
}

type ConfirmResponse struct {
	BatchID string `json:"batch_id"`
}
