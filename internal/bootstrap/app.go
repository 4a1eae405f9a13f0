package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/concurrency"
	"github.com/osse101/BetEngine_Go/internal/config"
	"github.com/osse101/BetEngine_Go/internal/engine"
	"github.com/osse101/BetEngine_Go/internal/leaderboard"
	"github.com/osse101/BetEngine_Go/internal/ledger"
	"github.com/osse101/BetEngine_Go/internal/notification"
	"github.com/osse101/BetEngine_Go/internal/prediction"
	"github.com/osse101/BetEngine_Go/internal/repository"
	"github.com/osse101/BetEngine_Go/internal/resolution"
	"github.com/osse101/BetEngine_Go/internal/schedule"
	"github.com/osse101/BetEngine_Go/internal/scheduler"
	"github.com/osse101/BetEngine_Go/internal/server"
	"github.com/osse101/BetEngine_Go/internal/sse"
	"github.com/osse101/BetEngine_Go/internal/stats"
	"github.com/osse101/BetEngine_Go/internal/storage"
	"github.com/osse101/BetEngine_Go/internal/tournament"
	"github.com/osse101/BetEngine_Go/internal/user"
	"github.com/osse101/BetEngine_Go/internal/utils"
	"github.com/osse101/BetEngine_Go/internal/worker"
)

// App is the fully wired engine plus its HTTP surface and background jobs
type App struct {
	Config      *config.Config
	Store       repository.KV
	Engine      *engine.Engine
	Leaderboard leaderboard.Service
	Reminders   *notification.TimerReminderScheduler
	Pool        *worker.Pool
	Scheduler   *scheduler.Scheduler
	DailyReset  *worker.DailyResetWorker
	Hub         *sse.Hub
	Server      *server.Server
}

// Build wires every component over kv. It does not start background work.
func Build(ctx context.Context, cfg *config.Config, kv repository.KV, clk clock.Clock) (*App, error) {
	records := storage.NewRecords(kv)
	bus, notifier := InitializeEventSystem(clk)

	rng := utils.NewRandomSource(cfg.RandomSeed)

	reminders, err := newReminderScheduler(cfg, clk)
	if err != nil {
		return nil, err
	}

	definitions, err := LoadTournamentLineup(cfg.TournamentsPath)
	if err != nil {
		return nil, err
	}

	spacing := time.Duration(cfg.EventSpacingMinutes) * time.Minute
	scheduleSvc := schedule.NewService(records, clk, reminders, schedule.Config{
		PoolSize: cfg.EventPoolSize,
		Spacing:  spacing,
	})
	ledgerSvc := ledger.NewService(records, notifier)
	userSvc := user.NewService(records, ledgerSvc, notifier)
	predictionSvc := prediction.NewService(records, scheduleSvc, clk, notifier)
	resolutionSvc := resolution.NewService(scheduleSvc, predictionSvc, ledgerSvc, userSvc, rng, notifier, cfg.PointsPerCorrect)
	tournamentSvc := tournament.NewService(ledgerSvc, clk, rng, notifier, definitions)
	statsSvc := stats.NewService(predictionSvc, clk)
	leaderboardSvc := leaderboard.NewService(rng)

	eng := engine.New(scheduleSvc, resolutionSvc, tournamentSvc, concurrency.NewLockManager(), engine.Config{
		PoolSize:       cfg.EventPoolSize,
		SpacingMinutes: cfg.EventSpacingMinutes,
	})

	hub := sse.NewHub()
	RegisterEventHandlers(ctx, EventHandlerDependencies{EventBus: bus, Hub: hub})

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		Version:        cfg.Version,
	}, server.Dependencies{
		Store:       records,
		Events:      scheduleSvc,
		Predictions: predictionSvc,
		Ledger:      ledgerSvc,
		Tournaments: tournamentSvc,
		Users:       userSvc,
		Stats:       statsSvc,
		Leaderboard: leaderboardSvc,
		Hub:         hub,
	})

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)

	return &App{
		Config:      cfg,
		Store:       kv,
		Engine:      eng,
		Leaderboard: leaderboardSvc,
		Reminders:   reminders,
		Pool:        pool,
		Scheduler:   scheduler.New(pool),
		DailyReset:  worker.NewDailyResetWorker(eng, clk),
		Hub:         hub,
		Server:      srv,
	}, nil
}

// StartBackground bootstraps the event pool and starts the hub, workers and tickers.
// The HTTP server is started separately so the caller owns its error.
func (a *App) StartBackground(ctx context.Context) {
	events := a.Engine.Bootstrap(ctx)
	slog.Info(LogMsgEngineBootstrapped, "events", len(events))

	a.Hub.Start()
	a.Pool.Start(ctx)
	a.Scheduler.Schedule(a.Config.TickInterval, a.Engine)
	a.Scheduler.Schedule(a.Config.LeaderboardInterval, a.Leaderboard)
	a.DailyReset.Start()

	slog.Info(LogMsgJobsScheduled,
		"tick_interval", a.Config.TickInterval,
		"leaderboard_interval", a.Config.LeaderboardInterval,
		"next_daily_reset", a.DailyReset.NextResetAt())
}

// ShutdownComponents returns the components GracefulShutdown stops
func (a *App) ShutdownComponents() ShutdownComponents {
	return ShutdownComponents{
		Server:           a.Server,
		Scheduler:        a.Scheduler,
		Pool:             a.Pool,
		DailyResetWorker: a.DailyReset,
		Reminders:        a.Reminders,
		Hub:              a.Hub,
		Store:            a.Store,
	}
}

// newReminderScheduler always logs reminders and additionally posts them to a
// Discord webhook when one is configured.
func newReminderScheduler(cfg *config.Config, clk clock.Clock) (*notification.TimerReminderScheduler, error) {
	notifiers := []notification.Notifier{notification.LogNotifier{}}

	if cfg.DiscordWebhookID != "" {
		discord, err := notification.NewDiscordNotifier(cfg.DiscordWebhookID, cfg.DiscordWebhookToken)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscord, err)
		}
		notifiers = append(notifiers, discord)
		slog.Info(LogMsgDiscordNotifierEnabled)
	}

	return notification.NewTimerReminderScheduler(clk, cfg.ReminderLead, notifiers...), nil
}
