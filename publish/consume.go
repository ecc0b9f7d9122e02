package publish

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/meta"
	"github.com/TechArp/CafeApp/observability/logger"
	"github.com/TechArp/CafeApp/ucdef"
)

// Consume feeds every event of msgs into handler until ctx is done or msgs
// is closed. msgs is usually the channel returned by message.Subscriber.
//
// Every message is acked. Messages that can not be decoded and events the
// handler rejects are logged and dropped; delivering them again would fail
// the same way.
func Consume(
	ctx context.Context,
	msgs <-chan *message.Message,
	handler ucdef.EventSubscriber[cafe.Event],
	log logger.Logger,
) {
	log = log.Named("publish.consume").With("operation_id", handler.OperationID())

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			handle(ctx, msg, handler, log)
		}
	}
}

func handle(ctx context.Context, msg *message.Message, handler ucdef.EventSubscriber[cafe.Event], log logger.Logger) {
	ctx = meta.InjectMetaToContext(ctx, map[meta.ContextKey]string{
		meta.TraceID: msg.Metadata.Get(MetaTraceID),
		meta.TabID:   msg.Metadata.Get(MetaTabID),
	})
	log = log.WithContext(ctx).With("message_uuid", msg.UUID)

	event, err := Decode(msg)
	if err != nil {
		log.Errorx(err)
		msg.Ack()
		return
	}

	if err = handler.Handle(ctx, event); err != nil {
		log.With("event_type", event.Name()).Warnx(err)
	}

	msg.Ack()
}
