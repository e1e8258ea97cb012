package memory

import (
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"sort"
	"strings"
	"sync"
)

// kvStore is a process-local KVStore. It backs tests and the "memory" store driver.
type kvStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore returns an empty in-memory store.
func NewKVStore() repository.KVStore {
	return &kvStore{data: make(map[string][]byte)}
}

func (s *kvStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *kvStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *kvStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *kvStore) ScanPrefix(_ context.Context, prefix string) ([]repository.KVEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]repository.KVEntry, 0)
	for k, v := range s.data {
		if strings.HasPrefix(k, prefix) {
			entries = append(entries, repository.KVEntry{Key: k, Value: append([]byte(nil), v...)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

func (s *kvStore) Close(context.Context) error { return nil }
