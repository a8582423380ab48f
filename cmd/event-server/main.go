package main

import (
	"context"

	"reward-platform/internal/bootstrap"
	"reward-platform/internal/config"
	"reward-platform/internal/observability"
	"reward-platform/internal/server"
)

func main() {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := observability.WithFields(context.Background(), observability.Field{Key: "service", Value: "event-server"})

	cfg, err := config.LoadEventServer()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	deps, err := bootstrap.InitializeEventServer(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New("event-server", cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}
	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Error(ctx, "server shutdown failed", err)
	}
}
