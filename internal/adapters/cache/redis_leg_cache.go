package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"courier-admin-service/internal/ports"
)

// RedisLegCache stores origin->destination leg results as JSON values
// keyed by "leg:<origin>|<destination>".
type RedisLegCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLegCache(client *redis.Client, ttl time.Duration) *RedisLegCache {
	return &RedisLegCache{client: client, ttl: ttl}
}

func legKey(origin, destination string) string {
	return "leg:" + origin + "|" + destination
}

// Fetch cached legs for one origin and multiple destinations.
func (c *RedisLegCache) GetMany(ctx context.Context, origin string, destinations []string) (map[string]ports.LegResult, error) {
	if c.client == nil {
		return nil, errors.New("leg cache: redis client is nil")
	}
	if origin == "" {
		return nil, errors.New("get leg cache: origin must not be empty")
	}
	if len(destinations) == 0 {
		return map[string]ports.LegResult{}, nil
	}

	keys := make([]string, 0, len(destinations))
	uniq := make([]string, 0, len(destinations))
	seen := map[string]struct{}{}
	for _, d := range destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		uniq = append(uniq, d)
		keys = append(keys, legKey(origin, d))
	}
	if len(keys) == 0 {
		return map[string]ports.LegResult{}, nil
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get leg cache: mget: %w", err)
	}

	out := make(map[string]ports.LegResult, len(uniq))
	for i, v := range values {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		var r ports.LegResult
		if err := json.Unmarshal([]byte(s), &r); err != nil {
			return nil, fmt.Errorf("get leg cache: decode %q: %w", keys[i], err)
		}
		out[uniq[i]] = r
	}
	return out, nil
}

// Store many leg results for a single origin.
func (c *RedisLegCache) PutMany(ctx context.Context, origin string, results map[string]ports.LegResult) error {
	if c.client == nil {
		return errors.New("leg cache: redis client is nil")
	}
	if origin == "" {
		return errors.New("put leg cache: origin must not be empty")
	}
	if len(results) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for dest, r := range results {
		if strings.TrimSpace(dest) == "" {
			return errors.New("put leg cache: empty destination key")
		}
		payload, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("put leg cache: encode %q: %w", dest, err)
		}
		pipe.Set(ctx, legKey(origin, dest), payload, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put leg cache: pipeline exec: %w", err)
	}
	return nil
}
