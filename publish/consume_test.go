package publish_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/require"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/observability/logger"
	"github.com/TechArp/CafeApp/publish"
	"github.com/TechArp/CafeApp/tabcmd"
)

func TestConsume(t *testing.T) {
	pubsub := publish.NewGoChannel(publish.GoChannelConfig{OutputBuffer: 16, BlockUntilAck: true}, logger.Nop())
	t.Cleanup(func() { _ = pubsub.Close() })

	msgs, err := pubsub.Subscribe(t.Context(), publish.DefaultTopic)
	require.NoError(t, err)

	board := tabcmd.NewBoard()
	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		publish.Consume(ctx, msgs, board, logger.Nop())
		close(done)
	}()

	require.NoError(t, pubsub.Publish(publish.DefaultTopic, message.NewMessage("garbage", []byte("not json"))))
	pub := publish.NewWatermillPublisher(pubsub, "", logger.Nop())
	require.NoError(t, pub.Publish(t.Context(), tabEvents()...))

	require.Eventually(t, func() bool {
		state, ok := board.State(tab.ID)
		return ok && state.Name() == cafe.StateServedOrder
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consume did not stop")
	}
}
