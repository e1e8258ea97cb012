package kv

import (
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"encoding/json"
	"fmt"
)

func getJSON(ctx context.Context, store repository.KVStore, key string, out any) error {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func setJSON(ctx context.Context, store repository.KVStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}

// scanJSON decodes every value under prefix into a T, in key order.
func scanJSON[T any](ctx context.Context, store repository.KVStore, prefix string) ([]T, error) {
	entries, err := store.ScanPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		var v T
		if err := json.Unmarshal(e.Value, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Key, err)
		}
		out = append(out, v)
	}
	return out, nil
}
