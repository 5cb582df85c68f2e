package distance

import (
	"context"

	"go.uber.org/zap"

	"courier-admin-service/internal/ports"
)

// LegCache is a persistent origin->destination result cache.
type LegCache interface {
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]ports.LegResult, error)
	PutMany(ctx context.Context, origin string, results map[string]ports.LegResult) error
}

// CachingProvider decorates a DistanceBatchProvider with a leg cache.
// The wrapped oracle client stays a pure proxy; caching is opt-in at
// composition time and off by default. Cache failures degrade to upstream
// calls rather than failing the plan.
type CachingProvider struct {
	next   ports.DistanceBatchProvider
	cache  LegCache
	logger *zap.Logger
}

func NewCachingProvider(next ports.DistanceBatchProvider, cache LegCache, logger *zap.Logger) *CachingProvider {
	return &CachingProvider{next: next, cache: cache, logger: logger}
}

func (c *CachingProvider) GetLeg(ctx context.Context, origin, destination string) (ports.LegResult, error) {
	results, err := c.GetLegs(ctx, origin, []string{destination})
	if err != nil {
		return ports.LegResult{}, err
	}
	return results[0], nil
}

func (c *CachingProvider) GetLegs(ctx context.Context, origin string, destinations []string) ([]ports.LegResult, error) {
	hits := map[string]ports.LegResult{}
	if c.cache != nil {
		var err error
		hits, err = c.cache.GetMany(ctx, origin, destinations)
		if err != nil {
			c.logger.Warn("leg cache read failed", zap.String("origin", origin), zap.Error(err))
			hits = map[string]ports.LegResult{}
		}
	}

	misses := make([]string, 0, len(destinations))
	for _, d := range destinations {
		if _, ok := hits[d]; !ok {
			misses = append(misses, d)
		}
	}

	if len(misses) > 0 {
		fetched, err := c.next.GetLegs(ctx, origin, misses)
		if err != nil {
			return nil, err
		}

		fresh := make(map[string]ports.LegResult, len(misses))
		for i, d := range misses {
			fresh[d] = fetched[i]
			hits[d] = fetched[i]
		}
		if c.cache != nil {
			if err := c.cache.PutMany(ctx, origin, fresh); err != nil {
				c.logger.Warn("leg cache write failed", zap.String("origin", origin), zap.Error(err))
			}
		}
	}

	out := make([]ports.LegResult, len(destinations))
	for i, d := range destinations {
		out[i] = hits[d]
	}
	return out, nil
}
