package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"go-giftstore-api/internal/messaging/kafka/producer"
	"go-giftstore-api/internal/outbox"
	"go-giftstore-api/internal/shared/connection"
)

// RunWorker polls the Firestore outbox and publishes pending order events
// to Kafka until the process is signalled.
func RunWorker() error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	firestoreClient, err := connection.ConnectFirestore(ctx, os.Getenv("FIREBASE_PROJECT_ID"), os.Getenv("FIREBASE_CREDENTIALS_FILE"))
	if err != nil {
		return err
	}
	defer firestoreClient.Close()

	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    "order.events",
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	outboxRepo := outbox.NewRepository(firestoreClient)

	logger.Info("outbox worker started")
	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("outbox worker shutting down")
	cancel()
	time.Sleep(1 * time.Second)
	return nil
}
