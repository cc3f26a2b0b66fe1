package storage

import (
	"context"
	"strconv"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryAdapter is the in-process map backend. Always available; used as
// the default and as the fail-open fallback for the rate limiter. A single
// mutex guards the map, which also makes Increment atomic.
type MemoryAdapter struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{entries: map[string]memoryEntry{}}
}

func (m *MemoryAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || e.expired(time.Now()) {
		delete(m.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *MemoryAdapter) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

func (m *MemoryAdapter) Increment(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	e, ok := m.entries[key]
	if !ok || e.expired(now) {
		m.entries[key] = memoryEntry{value: "1"}
		return 1, nil
	}

	n, err := strconv.ParseInt(e.value, 10, 64)
	if err != nil {
		n = 0
	}
	n++
	e.value = strconv.FormatInt(n, 10)
	m.entries[key] = e
	return n, nil
}

func (m *MemoryAdapter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil
	}
	if ttl <= 0 {
		delete(m.entries, key)
		return nil
	}
	e.expiresAt = time.Now().Add(ttl)
	m.entries[key] = e
	return nil
}

func (m *MemoryAdapter) Ping(ctx context.Context) error { return nil }

func (m *MemoryAdapter) Close() error { return nil }

// Cleanup drops expired entries. The map otherwise only grows by expired
// rate-limit windows, so a periodic sweep keeps it bounded.
func (m *MemoryAdapter) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, key)
		}
	}
}
