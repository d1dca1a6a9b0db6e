package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"

	"go-giftstore-api/internal/cart"
	"go-giftstore-api/internal/messaging/kafka/consumer"
	"go-giftstore-api/internal/product"
	"go-giftstore-api/internal/shared/connection"
)

// RunConsumer reads order events and clears the originating cart from both
// stores once the order is safely recorded.
func RunConsumer() error {
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

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	cartService := cart.NewService(cart.Deps{
		Local:    cart.NewLocalStore(redisClient),
		Remote:   cart.NewRemoteStore(firestoreClient),
		Products: product.NewRepository(firestoreClient),
		Logger:   logger,
	})

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "cart-consumer-group",
	})
	defer reader.Close()

	logger.Info("cart consumer started")
	go consumer.ConsumeMessages(ctx, reader, cartService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("cart consumer shutting down")
	cancel()
	return nil
}
