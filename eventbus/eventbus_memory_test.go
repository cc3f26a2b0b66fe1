package eventbus_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reply-pilot/eventbus"
)

func TestMemoryBusDeliversEvents(t *testing.T) {
	bus := eventbus.NewMemoryEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan eventbus.Event, 1)
	go bus.Subscribe(ctx, "test-group", "test.topic", func(ctx context.Context, event eventbus.Event) error {
		received <- event
		return nil
	})

	payload, _ := json.Marshal(map[string]string{"hello": "world"})
	err := bus.Publish(ctx, "test.topic", eventbus.Event{ID: "ev-1", Payload: payload})
	require.NoError(t, err)

	select {
	case event := <-received:
		assert.Equal(t, "ev-1", event.ID)
		assert.JSONEq(t, `{"hello":"world"}`, string(event.Payload))
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestMemoryBusPublishNeverBlocks(t *testing.T) {
	bus := eventbus.NewMemoryEventBus()
	defer bus.Close()

	ctx := context.Background()
	// No subscriber; publishing beyond the buffer must drop, not block.
	for i := 0; i < 1000; i++ {
		require.NoError(t, bus.Publish(ctx, "unwatched.topic", eventbus.Event{ID: "x"}))
	}
}

func TestMemoryBusHandlerErrorDoesNotStopConsumer(t *testing.T) {
	bus := eventbus.NewMemoryEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := make(chan string, 2)
	go bus.Subscribe(ctx, "g", "t", func(ctx context.Context, event eventbus.Event) error {
		seen <- event.ID
		if event.ID == "bad" {
			return assert.AnError
		}
		return nil
	})

	require.NoError(t, bus.Publish(ctx, "t", eventbus.Event{ID: "bad"}))
	require.NoError(t, bus.Publish(ctx, "t", eventbus.Event{ID: "good"}))

	for _, want := range []string{"bad", "good"} {
		select {
		case id := <-seen:
			assert.Equal(t, want, id)
		case <-time.After(2 * time.Second):
			t.Fatalf("did not receive event %q", want)
		}
	}
}
