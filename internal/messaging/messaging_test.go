package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/config"
)

func TestOutboundLeavesTopicToWriter(t *testing.T) {
	msg := outbound([]byte("order-7"), []byte(`{"id":7}`))

	assert.Empty(t, msg.Topic)
	assert.Equal(t, []byte("order-7"), msg.Key)
	assert.Equal(t, []byte(`{"id":7}`), msg.Value)
}

func TestNewClientFallsBackToNoopWhenDisabled(t *testing.T) {
	cfg := config.Config{Messaging: config.Messaging{
		Enabled: false,
		Driver:  "noop",
		Kafka:   config.Kafka{Topic: "pos.orders"},
	}}

	client, err := NewClient(nil, cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "pos.orders", client.Topic())
	assert.NoError(t, client.Publish(context.Background(), []byte("k"), []byte("v")))
}

func TestNoopConsumeBlocksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- noopClient{}.Consume(ctx, func(context.Context, Message) error { return nil })
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("consume did not return after cancellation")
	}
}
