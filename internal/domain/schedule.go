package domain

import "time"

// TimeSource tags which upstream timestamp seeded a schedule's base time.
type TimeSource string

const (
	SourceCompleted         TimeSource = "completed"
	SourceEstimatedDelivery TimeSource = "estimated_delivery"
	SourceReachedCustomer   TimeSource = "reached_customer"
	SourceOnTheWay          TimeSource = "on_the_way"
	SourceAccepted          TimeSource = "accepted"
	SourceNow               TimeSource = "now"
)

// LegSchedule is the derived timestamp pair for one leg of a plan.
type LegSchedule struct {
	SequenceIndex    int
	StartedAt        time.Time
	EstimatedArrival time.Time
}

// ScheduleEstimate is the per-leg timing for a whole route plan. It is
// recomputed from scratch whenever the plan changes; timestamps are
// strictly increasing across legs, return leg included.
type ScheduleEstimate struct {
	Source   TimeSource
	BaseTime time.Time
	Legs     []LegSchedule
}
