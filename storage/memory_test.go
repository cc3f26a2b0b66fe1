package storage_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reply-pilot/storage"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemoryAdapter()

	_, ok, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", "v", 0))
	val, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryIncrement(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemoryAdapter()

	n, err := m.Increment(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = m.Increment(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemoryAdapter()

	require.NoError(t, m.Set(ctx, "k", "v", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryIncrementResetsAfterExpiry(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemoryAdapter()

	_, err := m.Increment(ctx, "counter")
	require.NoError(t, err)
	require.NoError(t, m.Expire(ctx, "counter", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	// First call of the new window counts as 1.
	n, err := m.Increment(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryIncrementConcurrent(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemoryAdapter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Increment(ctx, "counter")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	n, err := m.Increment(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(51), n)
}
