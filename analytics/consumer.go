package analytics

import (
	"context"
	"encoding/json"

	"reply-pilot/eventbus"
	"reply-pilot/events"
)

// NewEventHandler adapts the recorder to the event bus: it unpacks
// generation-completed events and folds them into the aggregate.
func NewEventHandler(rec *Recorder) eventbus.EventHandler {
	return func(ctx context.Context, event eventbus.Event) error {
		var evt events.GenerationCompletedEvent
		if err := json.Unmarshal(event.Payload, &evt); err != nil {
			return err
		}
		return rec.Record(ctx, evt.Success, evt.ResponseTimeMs, evt.Tone, evt.Platform, evt.Sentiment)
	}
}
