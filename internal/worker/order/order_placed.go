package order

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/config"
	"github.com/tia-rosa/pos/internal/messaging"
	ordersvc "github.com/tia-rosa/pos/internal/service/order"
	"github.com/tia-rosa/pos/internal/worker"
)

var workerTracer = otel.Tracer("github.com/tia-rosa/pos/worker/order")

// Module registers order-related worker handlers.
var Module = fx.Module("worker_order",
	fx.Provide(
		fx.Annotate(
			NewOrderPlacedHandler,
			fx.ResultTags(`group:"worker.handlers"`),
		),
	),
)

// NewOrderPlacedHandler logs a summary for every order placed event. Useful
// as a back-office tail of the day's sales when messaging is enabled.
func NewOrderPlacedHandler(logger *zap.Logger, cfg config.Config) worker.HandlerRegistration {
	handler := func(ctx context.Context, msg messaging.Message) error {
		ctx, span := workerTracer.Start(ctx, "worker.orders.process", trace.WithAttributes(
			attribute.String("messaging.topic", msg.Topic),
		))
		defer span.End()

		var event ordersvc.OrderPlacedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("failed to decode order placed", zap.Error(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "decode error")
			return err
		}

		logger.Info("order placed event processed",
			zap.Int64("id", event.ID),
			zap.String("customer_id", event.CustomerID),
			zap.Float64("total", event.Total),
			zap.Int("lines", event.Lines),
		)
		return nil
	}

	return worker.HandlerRegistration{
		Topic:   cfg.Messaging.Kafka.Topic,
		Handler: handler,
	}
}
