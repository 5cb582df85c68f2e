package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"courier-admin-service/internal/ports"
)

func newTestCache(t *testing.T) *RedisLegCache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLegCache(client, time.Hour)
}

func TestRedisLegCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	want := ports.LegResult{
		DistanceText:  "4.8 km",
		DistanceValue: 4800,
		DurationText:  "12 mins",
		DurationValue: 720,
	}
	if err := c.PutMany(ctx, "DEPOT", map[string]ports.LegResult{"A": want}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := c.GetMany(ctx, "DEPOT", []string{"A", "B"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(got))
	}
	if got["A"] != want {
		t.Fatalf("hit = %+v, want %+v", got["A"], want)
	}
}

func TestRedisLegCacheMissIsNotAnError(t *testing.T) {
	c := newTestCache(t)

	got, err := c.GetMany(context.Background(), "DEPOT", []string{"nowhere"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no hits, got %d", len(got))
	}
}

func TestRedisLegCacheValidatesInput(t *testing.T) {
	c := newTestCache(t)

	if _, err := c.GetMany(context.Background(), "", []string{"A"}); err == nil {
		t.Fatal("empty origin accepted")
	}
	if err := c.PutMany(context.Background(), "DEPOT", map[string]ports.LegResult{" ": {}}); err == nil {
		t.Fatal("empty destination key accepted")
	}
}
