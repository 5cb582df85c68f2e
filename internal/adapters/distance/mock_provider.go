package distance

import (
	"context"
	"fmt"

	"courier-admin-service/internal/ports"
)

type MockPair struct {
	From, To string
	Result   ports.LegResult
}

// MockProvider serves canned leg results for tests. Missing pairs error,
// mimicking an unresolvable address.
type MockProvider struct {
	m     map[string]ports.LegResult
	Calls []string
}

func NewMockProvider(pairs []MockPair) *MockProvider {
	m := make(map[string]ports.LegResult, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = p.Result
	}
	return &MockProvider{m: m}
}

func (p *MockProvider) GetLeg(ctx context.Context, origin, destination string) (ports.LegResult, error) {
	p.Calls = append(p.Calls, origin+"|"+destination)
	r, ok := p.m[origin+"|"+destination]
	if !ok {
		return ports.LegResult{}, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}
	return r, nil
}
