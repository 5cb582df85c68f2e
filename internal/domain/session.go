package domain

import "fmt"

// SessionState is the lifecycle of one multi-order planning session.
type SessionState string

const (
	SessionIdle                 SessionState = "idle"
	SessionDepotSelected        SessionState = "depot_selected"
	SessionDestinationsSelected SessionState = "destinations_selected"
	SessionRoutesComputed       SessionState = "routes_computed"
	SessionAwaitingConfirmation SessionState = "awaiting_confirmation"
	SessionConfirmed            SessionState = "confirmed"
	SessionCancelled            SessionState = "cancelled"
)

// sessionTransitions is the planning session state machine. RoutesComputed
// re-enters itself on manual reordering; cancellation is allowed from any
// non-terminal state.
var sessionTransitions = map[SessionState][]SessionState{
	SessionIdle:                 {SessionDepotSelected, SessionCancelled},
	SessionDepotSelected:        {SessionDepotSelected, SessionDestinationsSelected, SessionCancelled},
	SessionDestinationsSelected: {SessionDestinationsSelected, SessionRoutesComputed, SessionCancelled},
	SessionRoutesComputed:       {SessionRoutesComputed, SessionAwaitingConfirmation, SessionCancelled},
	SessionAwaitingConfirmation: {SessionAwaitingConfirmation, SessionRoutesComputed, SessionConfirmed, SessionCancelled},
	SessionConfirmed:            {},
	SessionCancelled:            {},
}

// CanTransitionTo returns true if the state machine allows moving to target.
func (s SessionState) CanTransitionTo(target SessionState) bool {
	for _, t := range sessionTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true once the session can no longer change.
func (s SessionState) IsTerminal() bool {
	return len(sessionTransitions[s]) == 0
}

// Transition moves the session to target or fails without side effects.
func (s *SessionState) Transition(target SessionState) error {
	if !s.CanTransitionTo(target) {
		return fmt.Errorf("session: invalid transition %s -> %s", *s, target)
	}
	*s = target
	return nil
}
