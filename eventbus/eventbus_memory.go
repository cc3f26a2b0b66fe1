package eventbus

import (
	"context"
	"sync"

	"reply-pilot/logger"
)

// MemoryEventBus is the in-process bus used when no broker is configured.
// Each topic is a buffered channel; publishing never blocks the request
// path, and events are dropped with a warning when a consumer lags badly.
type MemoryEventBus struct {
	mu     sync.Mutex
	topics map[string]chan Event
	closed bool
}

const memoryTopicBuffer = 256

func NewMemoryEventBus() *MemoryEventBus {
	return &MemoryEventBus{topics: map[string]chan Event{}}
}

func (m *MemoryEventBus) channel(topic string) chan Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, ok := m.topics[topic]
	if !ok {
		ch = make(chan Event, memoryTopicBuffer)
		m.topics[topic] = ch
	}
	return ch
}

func (m *MemoryEventBus) Publish(ctx context.Context, topic string, event Event) error {
	select {
	case m.channel(topic) <- event:
	default:
		logger.Log.Warnf("event bus topic %s full, dropping event %s", topic, event.ID)
	}
	return nil
}

func (m *MemoryEventBus) Subscribe(ctx context.Context, groupID string, topic string, handler EventHandler) error {
	ch := m.channel(topic)
	logger.Log.Infof("memory consumer (%s) started on topic %s", groupID, topic)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			if err := handler(ctx, event); err != nil {
				logger.Log.Errorf("handler failed for event %s on topic %s: %v", event.ID, topic, err)
			}
		}
	}
}

func (m *MemoryEventBus) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	for _, ch := range m.topics {
		close(ch)
	}
}
