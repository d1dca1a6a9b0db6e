package main

import (
	"log"

	"github.com/joho/godotenv"

	"go-giftstore-api/internal/app"
)

func main() {
	_ = godotenv.Load()

	if err := app.RunWorker(); err != nil {
		log.Fatal(err)
	}
}
