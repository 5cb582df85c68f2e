package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"courier-admin-service/internal/ports"
)

// MatrixClient implements DistanceProvider against the external distance
// matrix endpoint. It is a pure proxy with no retries, caching, or request
// timeout; an unresponsive upstream stalls the planning operation. Callers
// thread a context for server shutdown.
type MatrixClient struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewMatrixClient(baseURL, apiKey string) (*MatrixClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("matrix client: base URL is empty")
	}
	return &MatrixClient{
		session: &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}, nil
}

type matrixRequest struct {
	Origins      []string `json:"origins"`
	Destinations []string `json:"destinations"`
}

type matrixLeg struct {
	Distance      string  `json:"distance"`
	DistanceValue float64 `json:"distanceValue"`
	Duration      string  `json:"duration"`
	DurationValue float64 `json:"durationValue"`
}

type matrixResponse struct {
	Success bool        `json:"success"`
	Legs    []matrixLeg `json:"legs"`
	Error   string      `json:"error"`
}

// Delegate to the batched path so both entry points share one code path.
func (c *MatrixClient) GetLeg(ctx context.Context, origin, destination string) (ports.LegResult, error) {
	results, err := c.GetLegs(ctx, origin, []string{destination})
	if err != nil {
		return ports.LegResult{}, err
	}
	return results[0], nil
}

// GetLegs queries origin -> every destination in a single upstream call.
// An unresolvable address, a transport error, and success=false are all
// treated identically: the operation aborts.
func (c *MatrixClient) GetLegs(ctx context.Context, origin string, destinations []string) ([]ports.LegResult, error) {
	if strings.TrimSpace(origin) == "" {
		return nil, errors.New("get legs: origin must be non-empty")
	}
	if len(destinations) == 0 {
		return nil, errors.New("get legs: destinations must be non-empty")
	}
	for _, d := range destinations {
		if strings.TrimSpace(d) == "" {
			return nil, errors.New("get legs: destination must be non-empty")
		}
	}

	payload, err := json.Marshal(matrixRequest{
		Origins:      []string{origin},
		Destinations: destinations,
	})
	if err != nil {
		return nil, fmt.Errorf("get legs: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/distance-matrix", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("get legs: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get legs: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get legs: unexpected status %d", resp.StatusCode)
	}

	var decoded matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("get legs: decode response: %w", err)
	}

	if !decoded.Success {
		msg := decoded.Error
		if msg == "" {
			msg = "upstream reported failure"
		}
		return nil, fmt.Errorf("get legs: %s", msg)
	}

	if len(decoded.Legs) != len(destinations) {
		return nil, fmt.Errorf("get legs: got %d legs for %d destinations", len(decoded.Legs), len(destinations))
	}

	out := make([]ports.LegResult, len(decoded.Legs))
	for i, leg := range decoded.Legs {
		out[i] = toLegResult(leg)
	}
	return out, nil
}

// toLegResult prefers the numeric fields; absent or malformed values fall
// back to parsing the display text.
func toLegResult(leg matrixLeg) ports.LegResult {
	meters := int(leg.DistanceValue)
	if meters <= 0 {
		meters = parseDistanceText(leg.Distance)
	}
	seconds := int(leg.DurationValue)
	if seconds <= 0 {
		seconds = parseDurationText(leg.Duration)
	}
	return ports.LegResult{
		DistanceText:  leg.Distance,
		DistanceValue: meters,
		DurationText:  leg.Duration,
		DurationValue: seconds,
	}
}
