package domain

import (
	"errors"
	"fmt"
)

// ReturnOption selects what happens after the last delivery stop.
type ReturnOption string

const (
	ReturnNone     ReturnOption = "none"
	ReturnOriginal ReturnOption = "original"
	ReturnNearest  ReturnOption = "nearest"
)

func ParseReturnOption(s string) (ReturnOption, error) {
	switch ReturnOption(s) {
	case ReturnNone, ReturnOriginal, ReturnNearest:
		return ReturnOption(s), nil
	default:
		return "", fmt.Errorf("parse return option: unknown value %q", s)
	}
}

// Leg is one origin→destination segment of a route plan.
// Distance and duration carry both the oracle's display text and its
// numeric value (meters / seconds).
type Leg struct {
	Origin        string
	Destination   string
	CustomerID    *int64
	CustomerName  string
	DistanceText  string
	DistanceValue int
	DurationText  string
	DurationValue int
	SequenceIndex int
	IsReturn      bool

	// Set when a nearest-depot search could not resolve any active depot
	// and the leg fell back to the original one.
	DepotFallback bool
}

// RoutePlan is the full ordered leg sequence for one planning session,
// with at most one trailing return leg. It belongs exclusively to the
// session that built it.
type RoutePlan struct {
	Depot        Store
	ReturnOption ReturnOption
	Legs         []Leg
}

// DeliveryLegCount returns the number of normal (non-return) legs.
func (p *RoutePlan) DeliveryLegCount() int {
	n := len(p.Legs)
	if p.HasReturnLeg() {
		n--
	}
	return n
}

// HasReturnLeg reports whether the plan ends with a return-to-depot leg.
func (p *RoutePlan) HasReturnLeg() bool {
	return len(p.Legs) > 0 && p.Legs[len(p.Legs)-1].IsReturn
}

// Rechain recomputes every leg's origin and 1-based sequence index from
// scratch. It must run after any reordering so that leg[i].Destination ==
// leg[i+1].Origin holds across the whole plan, return leg included.
func (p *RoutePlan) Rechain() {
	for i := range p.Legs {
		if i == 0 {
			p.Legs[i].Origin = p.Depot.Address
		} else {
			p.Legs[i].Origin = p.Legs[i-1].Destination
		}
		p.Legs[i].SequenceIndex = i + 1
	}
}

// MoveUp swaps the delivery leg at index i (0-based) with the one before it,
// then re-establishes the chaining invariant. The return leg never moves.
func (p *RoutePlan) MoveUp(i int) error {
	if i <= 0 || i >= len(p.Legs) {
		return fmt.Errorf("move up: index %d out of range", i)
	}
	if p.Legs[i].IsReturn || p.Legs[i-1].IsReturn {
		return errors.New("move up: return leg cannot be reordered")
	}
	p.Legs[i-1], p.Legs[i] = p.Legs[i], p.Legs[i-1]
	p.Rechain()
	return nil
}

// MoveDown swaps the delivery leg at index i with the one after it.
func (p *RoutePlan) MoveDown(i int) error {
	if i < 0 || i >= len(p.Legs)-1 {
		return fmt.Errorf("move down: index %d out of range", i)
	}
	if p.Legs[i].IsReturn || p.Legs[i+1].IsReturn {
		return errors.New("move down: return leg cannot be reordered")
	}
	p.Legs[i], p.Legs[i+1] = p.Legs[i+1], p.Legs[i]
	p.Rechain()
	return nil
}

// Validate checks the origin-chaining invariant and sequence numbering.
func (p *RoutePlan) Validate() error {
	for i, leg := range p.Legs {
		want := p.Depot.Address
		if i > 0 {
			want = p.Legs[i-1].Destination
		}
		if leg.Origin != want {
			return fmt.Errorf("route plan: leg %d origin %q does not chain from %q", i+1, leg.Origin, want)
		}
		if leg.SequenceIndex != i+1 {
			return fmt.Errorf("route plan: leg %d has sequence index %d", i+1, leg.SequenceIndex)
		}
		if leg.IsReturn && i != len(p.Legs)-1 {
			return fmt.Errorf("route plan: return leg at position %d is not last", i+1)
		}
	}
	return nil
}
