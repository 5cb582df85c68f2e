package ports

import "context"

// LegResult is the distance and travel duration between two addresses.
// Numeric values (meters / seconds) are authoritative; the text fields hold
// the oracle's human-readable rendering ("4.8 km", "12 mins") and are the
// fallback when a numeric field comes back absent or malformed.
type LegResult struct {
	DistanceText  string
	DistanceValue int
	DurationText  string
	DurationValue int
}

// Contract for retrieving travel distance and duration between addresses.
type DistanceProvider interface {
	// Return travel distance and estimated duration between two addresses.
	GetLeg(ctx context.Context, origin string, destination string) (LegResult, error)
}

// Optional extension of DistanceProvider that supports batched lookups.
type DistanceBatchProvider interface {
	DistanceProvider
	// Return results from one origin to many destinations, in destination order.
	GetLegs(ctx context.Context, origin string, destinations []string) ([]LegResult, error)
}
