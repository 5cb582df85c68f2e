package prefs

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisPreferenceStoreRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisPreferenceStore(client)
	ctx := context.Background()

	if _, ok, err := s.GetPreference(ctx, "manager:1:last_store"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := s.SetPreference(ctx, "manager:1:last_store", "42"); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok, err := s.GetPreference(ctx, "manager:1:last_store")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != "42" {
		t.Fatalf("got %q ok=%v, want \"42\" true", v, ok)
	}
}
