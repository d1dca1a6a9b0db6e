package producer

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-giftstore-api/internal/outbox"
)

const (
	pollInterval = 5 * time.Second
	batchSize    = 10
)

// ProcessOutboxEvents drains the outbox into Kafka until the context is
// cancelled. Events that fail to publish are marked FAILED and left for
// manual inspection; the loop never retries them on its own.
func ProcessOutboxEvents(ctx context.Context, repo outbox.Repository, writer *kafka.Writer, logger *zap.Logger) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	logger.Info("outbox processor started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := processPending(ctx, repo, writer, logger); err != nil {
				logger.Error("outbox poll failed", zap.Error(err))
			}
		}
	}
}

func processPending(ctx context.Context, repo outbox.Repository, writer *kafka.Writer, logger *zap.Logger) error {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	logger.Info("publishing outbox events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("event publish failed",
				zap.String("event_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID)
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("event mark-sent failed", zap.String("event_id", event.ID), zap.Error(err))
		}
	}

	return nil
}
