package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-giftstore-api/internal/shared/connection"
	"go-giftstore-api/internal/shared/seed"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	client, err := connection.ConnectFirestore(ctx, os.Getenv("FIREBASE_PROJECT_ID"), os.Getenv("FIREBASE_CREDENTIALS_FILE"))
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := seed.Run(ctx, client, logger); err != nil {
		log.Fatal(err)
	}

	if email := os.Getenv("SEED_ADMIN_EMAIL"); email != "" {
		if err := seed.Admin(ctx, client, email, os.Getenv("SEED_ADMIN_PASSWORD")); err != nil {
			log.Fatal(err)
		}
	}
}
