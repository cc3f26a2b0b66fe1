package ratelimit

import (
	"context"
	"fmt"
	"time"

	"reply-pilot/logger"
	"reply-pilot/storage"
)

const dailyLimitMessage = "Daily limit reached. Please try again tomorrow."
const minuteLimitMessage = "Too many requests. Please wait a minute and try again."

// Result is the outcome of one quota check. Message is only set when the
// request was denied.
type Result struct {
	Allowed bool
	Message string
}

// Limiter enforces two independent fixed windows per client: daily and
// per-minute. Counters live in the storage adapter; when the backend
// errors the limiter fails open to an in-process fallback so a storage
// outage cannot block all traffic.
type Limiter struct {
	store    storage.Adapter
	fallback *storage.MemoryAdapter

	perMinute int
	perDay    int

	now func() time.Time
}

func New(store storage.Adapter, perMinute int, perDay int) *Limiter {
	return &Limiter{
		store:     store,
		fallback:  storage.NewMemoryAdapter(),
		perMinute: perMinute,
		perDay:    perDay,
		now:       time.Now,
	}
}

// CheckAndConsume consumes one slot from both windows for clientID. The
// daily window is evaluated first; a daily denial short-circuits without
// touching the minute counter, so the returned message is deterministic
// when both windows would deny.
func (l *Limiter) CheckAndConsume(ctx context.Context, clientID string) Result {
	now := l.now()

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	dailyKey := fmt.Sprintf("ratelimit:%s:daily:%d", clientID, dayStart.Unix())

	count := l.increment(ctx, dailyKey, dayEnd.Sub(now))
	if count > int64(l.perDay) {
		return Result{Allowed: false, Message: dailyLimitMessage}
	}

	minuteStart := now.Truncate(time.Minute)
	minuteEnd := minuteStart.Add(time.Minute)
	minuteKey := fmt.Sprintf("ratelimit:%s:minute:%d", clientID, minuteStart.Unix())

	count = l.increment(ctx, minuteKey, minuteEnd.Sub(now))
	if count > int64(l.perMinute) {
		return Result{Allowed: false, Message: minuteLimitMessage}
	}

	return Result{Allowed: true}
}

// increment bumps a window counter, arming its expiry on first use. On
// storage errors it falls back to the in-process adapter: strict quota
// enforcement is traded for availability during backend outages.
func (l *Limiter) increment(ctx context.Context, key string, ttl time.Duration) int64 {
	count, err := l.store.Increment(ctx, key)
	if err != nil {
		logger.Log.Warnf("rate limit backend error, failing open to in-process counters: %v", err)
		count, err = l.fallback.Increment(ctx, key)
		if err != nil {
			return 1
		}
		if count == 1 {
			l.fallback.Expire(ctx, key, ttl)
		}
		return count
	}

	if count == 1 {
		if err := l.store.Expire(ctx, key, ttl); err != nil {
			logger.Log.Warnf("failed to set expiry on %s: %v", key, err)
		}
	}
	return count
}
