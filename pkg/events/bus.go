package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const DefaultTopic = "assistant.events"

// Bus is an in-process event bus. Messages published while nobody is
// subscribed are dropped.
type Bus struct {
	pubSub *gochannel.GoChannel
	topic  string
	logger watermill.LoggerAdapter
}

func NewBus(topic string, logger watermill.LoggerAdapter) *Bus {
	if topic == "" {
		topic = DefaultTopic
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{}, logger),
		topic:  topic,
		logger: logger,
	}
}

func (b *Bus) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(BaseEvent{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("type", event.EventType())
	msg.SetContext(ctx)

	if err := b.pubSub.Publish(b.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.EventType(), err)
	}
	return nil
}

// Consume subscribes to the bus and calls handle for every event until ctx is done.
// Messages that cannot be decoded are logged and acked; a nack would redeliver them forever.
func (b *Bus) Consume(ctx context.Context, handle func(context.Context, BaseEvent)) error {
	messages, err := b.pubSub.Subscribe(ctx, b.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var evt BaseEvent
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				b.logger.Error("Failed to decode event", err, watermill.LogFields{
					"message_uuid": msg.UUID,
					"topic":        b.topic,
				})
				msg.Ack()
				continue
			}
			handle(ctx, evt)
			msg.Ack()
		}
	}()

	return nil
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}
