package eventbus

import (
	"context"
	"encoding/json"
)

// Topic names used by the application.
const TopicGenerationCompleted = "replypilot.generation.completed"

// Event is the payload carried on a topic.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// EventHandler processes one delivered event.
type EventHandler func(ctx context.Context, event Event) error

// EventBus abstracts event publication and subscription. Delivery is
// best-effort: consumers must tolerate lost events, and handler errors are
// logged rather than retried.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	// Subscribe blocks consuming topic until ctx is cancelled.
	Subscribe(ctx context.Context, groupID string, topic string, handler EventHandler) error
	Close()
}
