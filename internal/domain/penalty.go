package domain

import (
	"fmt"
	"time"
)

// PenaltyReason is a closed enumeration of sanctionable driver conduct.
type PenaltyReason string

const (
	PenaltyLateDelivery      PenaltyReason = "late_delivery"
	PenaltyOrderDamage       PenaltyReason = "order_damage"
	PenaltyCustomerComplaint PenaltyReason = "customer_complaint"
	PenaltyPolicyViolation   PenaltyReason = "policy_violation"
)

func ParsePenaltyReason(s string) (PenaltyReason, error) {
	switch PenaltyReason(s) {
	case PenaltyLateDelivery, PenaltyOrderDamage, PenaltyCustomerComplaint, PenaltyPolicyViolation:
		return PenaltyReason(s), nil
	default:
		return "", fmt.Errorf("parse penalty reason: unknown value %q", s)
	}
}

// Penalty is a sanction recorded against a driver.
type Penalty struct {
	PenaltyID int64
	DriverID  int64
	Reason    PenaltyReason
	Amount    float64
	Note      string
	CreatedAt time.Time
}
