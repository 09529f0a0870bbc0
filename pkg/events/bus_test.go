package events

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus("", nil)
	defer bus.Close()

	received := make(chan BaseEvent, 1)
	require.NoError(t, bus.Consume(ctx, func(_ context.Context, evt BaseEvent) {
		received <- evt
	}))

	occurred := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, bus.Publish(ctx, BaseEvent{
		Type:       TypeQuestionsGenerated,
		Data:       map[string]interface{}{"count": 3},
		OccurredAt: occurred,
	}))

	select {
	case evt := <-received:
		assert.Equal(t, TypeQuestionsGenerated, evt.EventType())
		assert.EqualValues(t, 3, evt.Payload()["count"])
		assert.True(t, occurred.Equal(evt.Timestamp()))
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus("lonely", nil)
	defer bus.Close()

	err := bus.Publish(context.Background(), BaseEvent{Type: TypeMetadataUpdated})

	assert.NoError(t, err)
}

func TestBus_UndecodableMessageIsSkipped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	captured := watermill.NewCaptureLogger()
	bus := NewBus("", captured)
	defer bus.Close()

	received := make(chan BaseEvent, 1)
	require.NoError(t, bus.Consume(ctx, func(_ context.Context, evt BaseEvent) {
		received <- evt
	}))

	require.NoError(t, bus.pubSub.Publish(bus.topic, message.NewMessage(watermill.NewUUID(), []byte("not json"))))
	require.NoError(t, bus.Publish(ctx, BaseEvent{Type: TypeMetadataUpdated}))

	select {
	case evt := <-received:
		assert.Equal(t, TypeMetadataUpdated, evt.EventType())
	case <-time.After(2 * time.Second):
		t.Fatal("event behind an undecodable message was not delivered")
	}

	var decodeErrors int
	for _, entry := range captured.Captured()[watermill.ErrorLogLevel] {
		if entry.Msg == "Failed to decode event" {
			decodeErrors++
		}
	}
	assert.Equal(t, 1, decodeErrors)
}
