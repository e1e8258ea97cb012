package redis

import (
	"alcyxob/lesson-planner/internal/config"
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const scanBatch = 200

type redisKVStore struct {
	rdb *goredis.Client
}

// NewRedisKVStore connects to Redis and verifies the connection with a ping.
func NewRedisKVStore(cfg config.RedisConfig) (repository.KVStore, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &redisKVStore{rdb: rdb}, nil
}

func (s *redisKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *redisKVStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *redisKVStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// ScanPrefix walks the keyspace with SCAN MATCH and fetches values with MGET.
// Keys removed between the scan and the fetch are skipped.
func (s *redisKVStore) ScanPrefix(ctx context.Context, prefix string) ([]repository.KVEntry, error) {
	pattern := escapeGlob(prefix) + "*"
	seen := make(map[string]struct{})
	var keys []string

	iter := s.rdb.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if _, dup := seen[k]; dup {
			continue // SCAN may return a key more than once
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	entries := make([]repository.KVEntry, 0, len(keys))
	if len(keys) == 0 {
		return entries, nil
	}
	sort.Strings(keys)

	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		entries = append(entries, repository.KVEntry{Key: keys[i], Value: []byte(str)})
	}
	return entries, nil
}

func (s *redisKVStore) Close(context.Context) error {
	return s.rdb.Close()
}

// escapeGlob escapes the characters SCAN MATCH treats specially.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\', '^':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
