package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/BetEngine_Go/internal/repository"
	"github.com/osse101/BetEngine_Go/internal/scheduler"
	"github.com/osse101/BetEngine_Go/internal/server"
	"github.com/osse101/BetEngine_Go/internal/sse"
	"github.com/osse101/BetEngine_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server           *server.Server
	Scheduler        *scheduler.Scheduler
	Pool             *worker.Pool
	DailyResetWorker *worker.DailyResetWorker
	Reminders        shutdownable
	Hub              *sse.Hub
	Store            repository.KV
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Tickers and workers (no new ticks, drain in-flight ones)
// 3. Timers (daily reset and pending reminders)
// 4. SSE hub and record store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}

	if components.DailyResetWorker != nil {
		shutdownComponent(ctx, ComponentDailyReset, components.DailyResetWorker)
	}
	if components.Reminders != nil {
		shutdownComponent(ctx, ComponentReminders, components.Reminders)
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownable interface {
	Shutdown(context.Context) error
}

// shutdownComponent shuts down a component and logs any errors.
func shutdownComponent(ctx context.Context, name string, component shutdownable) {
	if err := component.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgComponentShutdownFailed, "error", err)
	}
}
