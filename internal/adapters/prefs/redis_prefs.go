package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPreferenceStore keeps per-manager dashboard preferences (such as
// the last selected depot) in Redis, replacing the browser-local storage
// the dashboard previously leaned on.
type RedisPreferenceStore struct {
	client *redis.Client
}

func NewRedisPreferenceStore(client *redis.Client) *RedisPreferenceStore {
	return &RedisPreferenceStore{client: client}
}

func prefKey(key string) string { return "pref:" + key }

func (s *RedisPreferenceStore) GetPreference(ctx context.Context, key string) (string, bool, error) {
	if s.client == nil {
		return "", false, errors.New("preference store: redis client is nil")
	}
	v, err := s.client.Get(ctx, prefKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisPreferenceStore) SetPreference(ctx context.Context, key, value string) error {
	if s.client == nil {
		return errors.New("preference store: redis client is nil")
	}
	if err := s.client.Set(ctx, prefKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}
