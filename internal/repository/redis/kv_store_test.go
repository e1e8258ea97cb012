package redis

import (
	"alcyxob/lesson-planner/internal/config"
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (repository.KVStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisKVStore(config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store, mr
}

func TestNewRedisKVStoreRequiresAddress(t *testing.T) {
	_, err := NewRedisKVStore(config.RedisConfig{})
	assert.Error(t, err)
}

func TestRedisKVStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	_, err := store.Get(ctx, "unit:1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Set(ctx, "unit:1", []byte(`{"title":"old"}`)))
	require.NoError(t, store.Set(ctx, "unit:1", []byte(`{"title":"new"}`)))
	got, err := store.Get(ctx, "unit:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"new"}`, string(got))
	assert.Zero(t, mr.TTL("unit:1"), "values never expire")

	require.NoError(t, store.Delete(ctx, "unit:1"))
	require.NoError(t, store.Delete(ctx, "unit:1"), "deleting a missing key is not an error")
	_, err = store.Get(ctx, "unit:1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRedisKVStoreScanPrefixSortedAndScoped(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	for _, k := range []string{"lesson:c", "unit:a", "lesson:a", "lesson:b", "lessons:x"} {
		require.NoError(t, store.Set(ctx, k, []byte(`"`+k+`"`)))
	}

	entries, err := store.ScanPrefix(ctx, "lesson:")
	require.NoError(t, err)
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		assert.Equal(t, `"`+e.Key+`"`, string(e.Value))
	}
	assert.Equal(t, []string{"lesson:a", "lesson:b", "lesson:c"}, keys)

	empty, err := store.ScanPrefix(ctx, "schedule:")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRedisKVStoreScanPrefixTreatsGlobCharactersLiterally(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Set(ctx, "tenant*:unit:1", []byte(`1`)))
	require.NoError(t, store.Set(ctx, "tenantX:unit:2", []byte(`2`)))

	entries, err := store.ScanPrefix(ctx, "tenant*:")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tenant*:unit:1", entries[0].Key)
}

// deleteBeforeMGet removes a key between SCAN and MGET.
type deleteBeforeMGet struct {
	mr  *miniredis.Miniredis
	key string
}

func (h deleteBeforeMGet) DialHook(next goredis.DialHook) goredis.DialHook { return next }

func (h deleteBeforeMGet) ProcessHook(next goredis.ProcessHook) goredis.ProcessHook {
	return func(ctx context.Context, cmd goredis.Cmder) error {
		if cmd.Name() == "mget" {
			h.mr.Del(h.key)
		}
		return next(ctx, cmd)
	}
}

func (h deleteBeforeMGet) ProcessPipelineHook(next goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return next
}

func TestRedisKVStoreScanPrefixSkipsVanishedKeys(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	rdb.AddHook(deleteBeforeMGet{mr: mr, key: "unit:b"})
	store := &redisKVStore{rdb: rdb}

	require.NoError(t, store.Set(ctx, "unit:a", []byte(`1`)))
	require.NoError(t, store.Set(ctx, "unit:b", []byte(`2`)))

	entries, err := store.ScanPrefix(ctx, "unit:")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "unit:a", entries[0].Key)
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, "schedule:", escapeGlob("schedule:"))
	assert.Equal(t, `a\*b\?c\[d\]`, escapeGlob("a*b?c[d]"))
	assert.Equal(t, `x\\y`, escapeGlob(`x\y`))
}
