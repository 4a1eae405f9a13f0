package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/BetEngine_Go/internal/bootstrap"
	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open record store", "error", err)
		os.Exit(1)
	}

	app, err := bootstrap.Build(ctx, cfg, kv, clock.NewRealClock())
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		_ = kv.Close()
		os.Exit(1)
	}

	app.StartBackground(ctx)

	serverErr := make(chan error, 1)
	go func() {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, app.ShutdownComponents())
}
