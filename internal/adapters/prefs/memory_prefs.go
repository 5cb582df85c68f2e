package prefs

import (
	"context"
	"sync"
)

// MemoryPreferenceStore is the in-process fallback used when Redis is not
// configured, and the default store in tests.
type MemoryPreferenceStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{m: make(map[string]string)}
}

func (s *MemoryPreferenceStore) GetPreference(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemoryPreferenceStore) SetPreference(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
