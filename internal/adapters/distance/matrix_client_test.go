package distance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetLegsDecodesNumericFields(t *testing.T) {
	var gotAuth string
	var gotBody matrixRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/distance-matrix" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(matrixResponse{
			Success: true,
			Legs: []matrixLeg{
				{Distance: "2.0 km", DistanceValue: 2000, Duration: "4 minutes", DurationValue: 240},
				{Distance: "5.0 km", DistanceValue: 5000, Duration: "10 minutes", DurationValue: 600},
			},
		})
	}))
	defer srv.Close()

	client, err := NewMatrixClient(srv.URL, "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := client.GetLegs(context.Background(), "D", []string{"B", "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "test-key" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if len(gotBody.Origins) != 1 || gotBody.Origins[0] != "D" {
		t.Fatalf("request origins = %v", gotBody.Origins)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].DistanceValue != 2000 || results[0].DurationValue != 240 {
		t.Fatalf("leg 1 = %+v", results[0])
	}
	if results[1].DistanceText != "5.0 km" {
		t.Fatalf("leg 2 text = %q", results[1].DistanceText)
	}
}

func TestGetLegsFallsBackToTextParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Numeric fields missing; the display text carries the values.
		json.NewEncoder(w).Encode(matrixResponse{
			Success: true,
			Legs: []matrixLeg{
				{Distance: "2.5 km", Duration: "1 hour 5 minutes"},
			},
		})
	}))
	defer srv.Close()

	client, err := NewMatrixClient(srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := client.GetLegs(context.Background(), "D", []string{"A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].DistanceValue != 2500 {
		t.Fatalf("distance = %d, want 2500", results[0].DistanceValue)
	}
	if results[0].DurationValue != 3900 {
		t.Fatalf("duration = %d, want 3900", results[0].DurationValue)
	}
}

func TestGetLegsUpstreamFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(matrixResponse{Success: false, Error: "address not found"})
	}))
	defer srv.Close()

	client, err := NewMatrixClient(srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.GetLegs(context.Background(), "D", []string{"nowhere"})
	if err == nil {
		t.Fatal("expected an error for success=false")
	}
	if !strings.Contains(err.Error(), "address not found") {
		t.Fatalf("error %v does not carry the upstream message", err)
	}
}

func TestGetLegsNon200Aborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewMatrixClient(srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = client.GetLegs(context.Background(), "D", []string{"A"}); err == nil {
		t.Fatal("expected an error for HTTP 502")
	}
}

func TestGetLegsCountMismatchAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(matrixResponse{
			Success: true,
			Legs:    []matrixLeg{{Distance: "1 km", DistanceValue: 1000}},
		})
	}))
	defer srv.Close()

	client, err := NewMatrixClient(srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = client.GetLegs(context.Background(), "D", []string{"A", "B"}); err == nil {
		t.Fatal("expected an error for a short leg list")
	}
}

func TestGetLegsRejectsEmptyInput(t *testing.T) {
	client, err := NewMatrixClient("http://localhost:1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.GetLegs(context.Background(), "", []string{"A"}); err == nil {
		t.Fatal("empty origin accepted")
	}
	if _, err := client.GetLegs(context.Background(), "D", nil); err == nil {
		t.Fatal("empty destinations accepted")
	}
}
