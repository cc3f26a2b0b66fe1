package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reply-pilot/storage"
)

func TestMinuteLimit(t *testing.T) {
	ctx := context.Background()
	l := New(storage.NewMemoryAdapter(), 3, 30)
	l.now = func() time.Time { return time.Date(2026, 8, 31, 10, 0, 30, 0, time.UTC) }

	for i := 0; i < 3; i++ {
		r := l.CheckAndConsume(ctx, "1.2.3.4")
		assert.True(t, r.Allowed, "call %d should be allowed", i+1)
	}

	r := l.CheckAndConsume(ctx, "1.2.3.4")
	assert.False(t, r.Allowed)
	assert.Equal(t, minuteLimitMessage, r.Message)
}

func TestDailyLimit(t *testing.T) {
	ctx := context.Background()
	// High minute cap so the daily window is the binding one.
	l := New(storage.NewMemoryAdapter(), 1000, 30)
	l.now = func() time.Time { return time.Date(2026, 8, 31, 10, 0, 30, 0, time.UTC) }

	for i := 0; i < 30; i++ {
		r := l.CheckAndConsume(ctx, "1.2.3.4")
		assert.True(t, r.Allowed, "call %d should be allowed", i+1)
	}

	r := l.CheckAndConsume(ctx, "1.2.3.4")
	assert.False(t, r.Allowed)
	assert.Equal(t, dailyLimitMessage, r.Message)
}

func TestDailyDenialShortCircuitsMinuteWindow(t *testing.T) {
	ctx := context.Background()
	l := New(storage.NewMemoryAdapter(), 3, 5)

	base := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }

	// Exhaust the daily window across separate minutes.
	for i := 0; i < 5; i++ {
		l.now = func() time.Time { return base.Add(time.Duration(i) * 2 * time.Minute) }
		r := l.CheckAndConsume(ctx, "c")
		assert.True(t, r.Allowed)
	}

	l.now = func() time.Time { return base.Add(20 * time.Minute) }
	r := l.CheckAndConsume(ctx, "c")
	assert.False(t, r.Allowed)
	// Both windows would eventually deny; daily is checked first.
	assert.Equal(t, dailyLimitMessage, r.Message)
}

func TestWindowsAreIndependentPerClient(t *testing.T) {
	ctx := context.Background()
	l := New(storage.NewMemoryAdapter(), 3, 30)

	for i := 0; i < 3; i++ {
		l.CheckAndConsume(ctx, "client-a")
	}
	assert.False(t, l.CheckAndConsume(ctx, "client-a").Allowed)
	assert.True(t, l.CheckAndConsume(ctx, "client-b").Allowed)
}

func TestMinuteWindowResets(t *testing.T) {
	ctx := context.Background()
	l := New(storage.NewMemoryAdapter(), 3, 30)

	base := time.Date(2026, 8, 31, 10, 0, 30, 0, time.UTC)
	l.now = func() time.Time { return base }

	for i := 0; i < 3; i++ {
		l.CheckAndConsume(ctx, "c")
	}
	assert.False(t, l.CheckAndConsume(ctx, "c").Allowed)

	// Next minute starts a fresh window whose first call counts as 1.
	l.now = func() time.Time { return base.Add(time.Minute) }
	assert.True(t, l.CheckAndConsume(ctx, "c").Allowed)
}

type failingAdapter struct {
	*storage.MemoryAdapter
}

func (f *failingAdapter) Increment(ctx context.Context, key string) (int64, error) {
	return 0, errors.New("backend down")
}

func TestFailsOpenOnBackendError(t *testing.T) {
	ctx := context.Background()
	l := New(&failingAdapter{storage.NewMemoryAdapter()}, 3, 30)

	// Traffic keeps flowing on the in-process fallback counters.
	for i := 0; i < 3; i++ {
		assert.True(t, l.CheckAndConsume(ctx, "c").Allowed)
	}
	// The fallback still enforces the caps.
	assert.False(t, l.CheckAndConsume(ctx, "c").Allowed)
}
