package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"rapido/internal/app"
	"rapido/internal/cli"
	"rapido/internal/config"
	"rapido/internal/logger"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.App.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	ctx := context.Background()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}

	console := cli.New(os.Stdin, os.Stdout,
		application.Auth,
		application.Admin,
		application.Rides,
		application.Receipts,
		log)
	console.Run(ctx)

	// Final snapshot on clean shutdown.
	if err := application.Snapshots.Persist(ctx); err != nil {
		log.Warn("final snapshot save failed", zap.Error(err))
	}
}
