package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylo101/DFA-Union/internal/adapters/redis"
	"github.com/dylo101/DFA-Union/pkg/ports"
)

func newTestCache(t *testing.T, opts ...redis.Option) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	cache := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = cache.Close() })

	return cache, mr
}

func TestCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "abc", []byte(`{"union":{}}`)))

	data, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"union":{}}`), data)
}

func TestCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Get(context.Background(), "never-stored")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestCache_TTL(t *testing.T) {
	cache, mr := newTestCache(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short-lived", []byte("payload")))

	_, err := cache.Get(ctx, "short-lived")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cache.Get(ctx, "short-lived")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestCache_Prefix(t *testing.T) {
	cache, mr := newTestCache(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", []byte("payload")))
	assert.True(t, mr.Exists("custom:key"))
}
