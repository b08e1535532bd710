package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSetDelete(t *testing.T) {
	ctx := context.Background()
	b := New()
	defer b.Close()

	val, err := b.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, "", val)

	require.NoError(t, b.Set(ctx, "k", "v1|10|0", time.Minute))
	val, err = b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1|10|0", val)

	require.NoError(t, b.Delete(ctx, "k"))
	val, err = b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestExpiration(t *testing.T) {
	ctx := context.Background()
	b := New()
	defer b.Close()

	require.NoError(t, b.Set(ctx, "k", "v", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	val, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "", val, "expired key reads as absent")
}

func TestCheckAndSet_SetIfAbsent(t *testing.T) {
	ctx := context.Background()
	b := New()
	defer b.Close()

	ok, err := b.CheckAndSet(ctx, "k", "", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.CheckAndSet(ctx, "k", "", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "set-if-absent fails when key exists")

	val, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", val)
}

func TestCheckAndSet_ConditionalUpdate(t *testing.T) {
	ctx := context.Background()
	b := New()
	defer b.Close()

	require.NoError(t, b.Set(ctx, "k", "a", time.Minute))

	ok, err := b.CheckAndSet(ctx, "k", "stale", "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "mismatched expectation is rejected")

	ok, err = b.CheckAndSet(ctx, "k", "a", "b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	val, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "b", val)
}

func TestCheckAndSet_ExpiredKeyCountsAsAbsent(t *testing.T) {
	ctx := context.Background()
	b := New()
	defer b.Close()

	require.NoError(t, b.Set(ctx, "k", "old", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	ok, err := b.CheckAndSet(ctx, "k", "old", "new", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "expired value no longer matches")

	ok, err = b.CheckAndSet(ctx, "k", "", "new", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "expired key is absent for set-if-absent")
}

// Concurrent CAS on one key: every applied write must have observed the
// value it replaced, so the number of applied writes equals the number of
// distinct generations.
func TestCheckAndSet_ConcurrentSingleWinnerPerGeneration(t *testing.T) {
	ctx := context.Background()
	b := New()
	defer b.Close()

	require.NoError(t, b.Set(ctx, "k", "gen0", time.Minute))

	const workers = 16
	var wg sync.WaitGroup
	applied := make(chan struct{}, workers)

	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := b.CheckAndSet(ctx, "k", "gen0", "gen1", time.Minute)
			assert.NoError(t, err)
			if ok {
				applied <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(applied)

	count := 0
	for range applied {
		count++
	}
	assert.Equal(t, 1, count, "exactly one CAS from gen0 may win")
}
