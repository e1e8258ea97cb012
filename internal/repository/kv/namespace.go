package kv

import (
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"strings"
)

type namespacedStore struct {
	inner repository.KVStore
	ns    string
}

// WithNamespace prefixes every key with "<ns>:" so several deployments can
// share one backend. An empty ns returns inner unchanged.
func WithNamespace(inner repository.KVStore, ns string) repository.KVStore {
	ns = strings.TrimSpace(ns)
	if ns == "" {
		return inner
	}
	return &namespacedStore{inner: inner, ns: strings.TrimSuffix(ns, ":") + ":"}
}

func (s *namespacedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, s.ns+key)
}

func (s *namespacedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.ns+key, value)
}

func (s *namespacedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.ns+key)
}

func (s *namespacedStore) ScanPrefix(ctx context.Context, prefix string) ([]repository.KVEntry, error) {
	entries, err := s.inner.ScanPrefix(ctx, s.ns+prefix)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Key = strings.TrimPrefix(entries[i].Key, s.ns)
	}
	return entries, nil
}

func (s *namespacedStore) Close(ctx context.Context) error { return s.inner.Close(ctx) }
