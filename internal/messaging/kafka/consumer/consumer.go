package consumer

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-giftstore-api/internal/cart"
	"go-giftstore-api/internal/order"
)

// ConsumeMessages processes order events until the context is cancelled.
// Unknown event types are committed and skipped so the group never stalls.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, cartService cart.Service, logger *zap.Logger) {
	logger.Info("order events consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("fetch message failed", zap.Error(err))
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		switch eventType {
		case order.EventOrderCreated:
			if err := handleOrderCreated(ctx, msg.Value, cartService, logger); err != nil {
				logger.Error("handle ORDER_CREATED failed", zap.Error(err))
				continue
			}
		default:
			logger.Debug("skipping unknown event type", zap.String("event_type", eventType))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Error("commit message failed", zap.Error(err))
		}
	}
}
