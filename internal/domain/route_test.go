package domain

import "testing"

func testPlan() *RoutePlan {
	cid := func(v int64) *int64 { return &v }
	p := &RoutePlan{
		Depot:        Store{StoreID: 1, Name: "Central", Address: "DEPOT", Active: true},
		ReturnOption: ReturnOriginal,
		Legs: []Leg{
			{Origin: "DEPOT", Destination: "A", CustomerID: cid(10), CustomerName: "Alice", SequenceIndex: 1},
			{Origin: "A", Destination: "B", CustomerID: cid(11), CustomerName: "Bob", SequenceIndex: 2},
			{Origin: "B", Destination: "C", CustomerID: cid(12), CustomerName: "Cara", SequenceIndex: 3},
			{Origin: "C", Destination: "DEPOT", CustomerName: ReturnLegCustomerName, SequenceIndex: 4, IsReturn: true},
		},
	}
	return p
}

func TestRoutePlanValidateChaining(t *testing.T) {
	p := testPlan()
	if err := p.Validate(); err != nil {
		t.Fatalf("valid plan rejected: %v", err)
	}

	p.Legs[2].Origin = "WRONG"
	if err := p.Validate(); err == nil {
		t.Fatal("broken chaining accepted")
	}
}

func TestRoutePlanMoveUpRechains(t *testing.T) {
	p := testPlan()

	// Move the 3rd stop (C) to the front via two MoveUp calls.
	if err := p.MoveUp(2); err != nil {
		t.Fatalf("first move up: %v", err)
	}
	if err := p.MoveUp(1); err != nil {
		t.Fatalf("second move up: %v", err)
	}

	wantOrder := []string{"C", "A", "B", "DEPOT"}
	for i, want := range wantOrder {
		if p.Legs[i].Destination != want {
			t.Fatalf("leg %d destination = %q, want %q", i+1, p.Legs[i].Destination, want)
		}
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("chaining broken after reorder: %v", err)
	}
	if got := p.Legs[3].Origin; got != "B" {
		t.Fatalf("return leg origin = %q, want last delivery destination B", got)
	}
	for i, leg := range p.Legs {
		if leg.SequenceIndex != i+1 {
			t.Fatalf("leg %d sequence index = %d", i+1, leg.SequenceIndex)
		}
	}
}

func TestRoutePlanReturnLegImmovable(t *testing.T) {
	p := testPlan()
	if err := p.MoveUp(3); err == nil {
		t.Fatal("moving the return leg up should fail")
	}
	if err := p.MoveDown(2); err == nil {
		t.Fatal("moving a delivery leg into the return slot should fail")
	}
}

func TestRoutePlanDeliveryLegCount(t *testing.T) {
	p := testPlan()
	if got := p.DeliveryLegCount(); got != 3 {
		t.Fatalf("delivery leg count = %d, want 3", got)
	}
	p.Legs = p.Legs[:3]
	if got := p.DeliveryLegCount(); got != 3 {
		t.Fatalf("delivery leg count without return = %d, want 3", got)
	}
}
