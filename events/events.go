package events

import (
	"encoding/json"
	"fmt"
	"time"

	"reply-pilot/models"
)

// EventType identifies the payload carried by a bus event.
type EventType string

const (
	GenerationCompleted EventType = "generation.completed"
)

// BaseEvent is the envelope shared by all events.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// GenerationCompletedEvent is published after every generation attempt,
// successful or not. It carries everything the analytics recorder needs.
type GenerationCompletedEvent struct {
	BaseEvent
	Success        bool                      `json:"success"`
	ResponseTimeMs int64                     `json:"response_time_ms"`
	Tone           string                    `json:"tone"`
	Platform       string                    `json:"platform"`
	Sentiment      *models.SentimentAnalysis `json:"sentiment,omitempty"`
}

// SerializeEvent marshals an event and reports its type.
func SerializeEvent(event interface{}) ([]byte, EventType, error) {
	var eventType EventType

	switch e := event.(type) {
	case GenerationCompletedEvent:
		eventType = e.Type
	default:
		return nil, "", fmt.Errorf("unknown event type: %T", event)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, eventType, nil
}

// DeserializeEvent unmarshals payload bytes into the struct for eventType.
func DeserializeEvent(eventType EventType, data []byte) (interface{}, error) {
	var event interface{}

	switch eventType {
	case GenerationCompleted:
		event = &GenerationCompletedEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err := json.Unmarshal(data, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return event, nil
}
