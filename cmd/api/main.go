package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-giftstore-api/internal/app"
	"go-giftstore-api/internal/bootstrap"
)

func main() {
	_ = godotenv.Load()

	r := gin.Default()

	if err := app.BuildApp(r); err != nil {
		log.Fatal(err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := bootstrap.StartHTTPServer(r, bootstrap.ServerConfig{
		Port:         port,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, logger); err != nil {
		log.Fatal(err)
	}
}
