package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/Brkic92/simple-auth-api/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := app.LoadConfig()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
