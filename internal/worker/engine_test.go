package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/config"
	"github.com/tia-rosa/pos/internal/messaging"
)

type scriptedClient struct {
	messages []messaging.Message
}

func (c *scriptedClient) Publish(context.Context, []byte, []byte) error { return nil }

func (c *scriptedClient) Consume(ctx context.Context, handler messaging.Handler) error {
	for _, msg := range c.messages {
		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
	<-ctx.Done()
	return ctx.Err()
}

func (c *scriptedClient) Topic() string { return "pos.orders" }

func workerConfig() config.Config {
	return config.Config{Messaging: config.Messaging{
		Enabled: true,
		Workers: config.Worker{Enabled: true, Concurrency: 1, PollInterval: time.Millisecond},
	}}
}

func TestDispatchRoutesByTopic(t *testing.T) {
	handled := make([]string, 0, 2)
	engine := NewEngine(Params{
		Client: &scriptedClient{},
		Logger: zap.NewNop(),
		Config: workerConfig(),
		Registrations: []HandlerRegistration{
			{Topic: "pos.orders", Handler: func(ctx context.Context, msg messaging.Message) error {
				handled = append(handled, string(msg.Value))
				return nil
			}},
		},
	})

	require.NoError(t, engine.dispatch(context.Background(), 0, messaging.Message{Topic: "pos.orders", Value: []byte("a")}))
	require.NoError(t, engine.dispatch(context.Background(), 0, messaging.Message{Topic: "pos.unknown", Value: []byte("b")}))

	assert.Equal(t, []string{"a"}, handled)
}

func TestNewEngineDropsIncompleteRegistrations(t *testing.T) {
	engine := NewEngine(Params{
		Client: &scriptedClient{},
		Logger: zap.NewNop(),
		Config: workerConfig(),
		Registrations: []HandlerRegistration{
			{Topic: "", Handler: func(context.Context, messaging.Message) error { return nil }},
			{Topic: "pos.orders", Handler: nil},
		},
	})

	assert.Empty(t, engine.handlers)
	require.NoError(t, engine.start(context.Background()))
	assert.NoError(t, engine.stop(context.Background()))
}

func TestEngineProcessesScriptedMessages(t *testing.T) {
	got := make(chan string, 1)
	client := &scriptedClient{messages: []messaging.Message{
		{Topic: "pos.orders", Value: []byte(`{"id":1}`)},
	}}

	engine := NewEngine(Params{
		Client: client,
		Logger: zap.NewNop(),
		Config: workerConfig(),
		Registrations: []HandlerRegistration{
			{Topic: "pos.orders", Handler: func(ctx context.Context, msg messaging.Message) error {
				select {
				case got <- string(msg.Value):
				default:
				}
				return nil
			}},
		},
	})

	require.NoError(t, engine.start(context.Background()))
	select {
	case value := <-got:
		assert.Equal(t, `{"id":1}`, value)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, engine.stop(stopCtx))
}
