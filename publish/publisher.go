// Package publish hands tab events to a watermill message publisher.
package publish

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/code19m/errx"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/cafe/eventcodec"
	"github.com/TechArp/CafeApp/meta"
	"github.com/TechArp/CafeApp/observability/logger"
)

// Metadata keys set on every published message.
const (
	MetaEventType = "event_type"
	MetaTabID     = "tab_id"
	MetaTraceID   = "trace_id"
)

// DefaultTopic is the topic tab events are published to unless configured otherwise.
const DefaultTopic = "cafe.tab_events"

// Publisher publishes tab events in order.
type Publisher interface {
	Publish(ctx context.Context, events ...cafe.Event) error
	Close() error
}

// WatermillPublisher implements Publisher on top of a watermill publisher.
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
	logger    logger.Logger
}

// NewWatermillPublisher creates a Publisher that encodes events with
// eventcodec and sends them to topic.
func NewWatermillPublisher(publisher message.Publisher, topic string, log logger.Logger) *WatermillPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &WatermillPublisher{
		publisher: publisher,
		topic:     topic,
		logger:    log.Named("publish"),
	}
}

// Publish encodes every event first and publishes nothing if one of them
// can not be encoded.
func (p *WatermillPublisher) Publish(ctx context.Context, events ...cafe.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]*message.Message, 0, len(events))
	for _, event := range events {
		msg, err := p.toMessage(ctx, event)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := p.publisher.Publish(p.topic, msgs...); err != nil {
		return errx.Wrap(err, errx.WithDetails(errx.D{"topic": p.topic, "count": len(msgs)}))
	}

	p.logger.WithContext(ctx).
		With("topic", p.topic).
		With("count", len(msgs)).
		Debug("events published")

	return nil
}

func (p *WatermillPublisher) toMessage(ctx context.Context, event cafe.Event) (*message.Message, error) {
	payload, err := eventcodec.Encode(event)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set(MetaEventType, event.Name())
	msg.Metadata.Set(MetaTabID, event.AggregateID().String())
	if traceID := meta.Find(ctx, meta.TraceID); traceID != "" {
		msg.Metadata.Set(MetaTraceID, traceID)
	}

	return msg, nil
}

// Close closes the underlying publisher.
func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}

// Decode turns a message published by WatermillPublisher back into an event.
func Decode(msg *message.Message) (cafe.Event, error) {
	event, err := eventcodec.Decode(msg.Payload)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"message_uuid": msg.UUID}))
	}
	return event, nil
}
