package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratewall/ratewall/backends"
)

func newTestBackend(t *testing.T) (*Backend, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	b := NewFromClient(client)
	t.Cleanup(func() { _ = b.Close() })
	return b, mr
}

func TestGetAbsentKey(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()

	val, err := b.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestSetGetRoundTrip(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "alice:api", "v1|9.5|1700000000000", time.Hour))

	val, err := b.Get(ctx, "alice:api")
	require.NoError(t, err)
	assert.Equal(t, "v1|9.5|1700000000000", val)
}

func TestCheckAndSet_SetIfAbsent(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()

	ok, err := b.CheckAndSet(ctx, "k", "", "first", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.CheckAndSet(ctx, "k", "", "second", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	val, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", val)
}

func TestCheckAndSet_ConditionalUpdate(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "k", "a", time.Hour))

	ok, err := b.CheckAndSet(ctx, "k", "stale", "b", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = b.CheckAndSet(ctx, "k", "a", "b", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	val, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "b", val)
}

func TestCheckAndSet_RefreshesTTL(t *testing.T) {
	b, mr := newTestBackend(t)
	ctx := context.Background()

	ok, err := b.CheckAndSet(ctx, "k", "", "v", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	ttl := mr.TTL("k")
	assert.Greater(t, ttl, 59*time.Minute)
}

func TestCheckAndSet_ExpiredKeyIsAbsent(t *testing.T) {
	b, mr := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "k", "old", time.Second))
	mr.FastForward(2 * time.Second)

	ok, err := b.CheckAndSet(ctx, "k", "old", "new", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = b.CheckAndSet(ctx, "k", "", "new", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelete(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "k", "v", time.Hour))
	require.NoError(t, b.Delete(ctx, "k"))

	val, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestTransientErrorClassification(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	b := NewFromClient(client)

	mr.Close() // simulate an outage

	_, err := b.Get(context.Background(), "k")
	require.Error(t, err)
	assert.True(t, backends.IsHealthError(err), "connection loss must classify as transient")
}
