package domain

import "testing"

func TestSessionHappyPath(t *testing.T) {
	s := SessionIdle
	steps := []SessionState{
		SessionDepotSelected,
		SessionDestinationsSelected,
		SessionRoutesComputed,
		SessionAwaitingConfirmation,
		SessionConfirmed,
	}
	for _, next := range steps {
		if err := s.Transition(next); err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
	}
	if !s.IsTerminal() {
		t.Fatal("confirmed session should be terminal")
	}
}

func TestSessionReorderReentersRoutesComputed(t *testing.T) {
	s := SessionRoutesComputed
	if err := s.Transition(SessionRoutesComputed); err != nil {
		t.Fatalf("self transition: %v", err)
	}

	s = SessionAwaitingConfirmation
	if err := s.Transition(SessionRoutesComputed); err != nil {
		t.Fatalf("reorder while awaiting confirmation: %v", err)
	}
}

func TestSessionRejectsSkips(t *testing.T) {
	s := SessionIdle
	if err := s.Transition(SessionRoutesComputed); err == nil {
		t.Fatal("idle -> routes_computed should be rejected")
	}
	s = SessionConfirmed
	if err := s.Transition(SessionCancelled); err == nil {
		t.Fatal("confirmed is terminal; cancel should be rejected")
	}
}
