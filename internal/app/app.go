// Package app wires infrastructure, services, and routes into a runnable
// process. Each binary (api, worker, consumer) has an entry point here.
package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-giftstore-api/internal/cloudinary"
	"go-giftstore-api/internal/shared/connection"
)

func newLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// BuildApp connects the API process's infrastructure and registers every
// route group. Kafka is not connected here; the outbox worker owns publishing.
func BuildApp(router *gin.Engine) error {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		return err
	}

	firestoreClient, err := connection.ConnectFirestore(ctx, os.Getenv("FIREBASE_PROJECT_ID"), os.Getenv("FIREBASE_CREDENTIALS_FILE"))
	if err != nil {
		return err
	}

	authClient, err := connection.ConnectFirebaseAuth(ctx, os.Getenv("FIREBASE_PROJECT_ID"), os.Getenv("FIREBASE_CREDENTIALS_FILE"))
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	cloudinaryService, err := cloudinary.NewService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
		os.Getenv("CLOUDINARY_FOLDER"),
	)
	if err != nil {
		return err
	}

	registerModules(router, registryDeps{
		Firestore:  firestoreClient,
		Redis:      redisClient,
		Auth:       authClient,
		Cloudinary: cloudinaryService,
		Logger:     logger,
	})

	return nil
}
