package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BetEngine_Go/internal/concurrency"
	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/metrics"
)

// Schedule is the part of the schedule service the tick drives
type Schedule interface {
	FetchActiveEvents(ctx context.Context) []domain.Event
	MaintainRollingSchedule(ctx context.Context, targetCount int, spacingMinutes int) []domain.Event
	RegeneratePool(ctx context.Context) []domain.Event
}

// Resolver resolves due events
type Resolver interface {
	Resolve(ctx context.Context) (*domain.ResolutionResult, error)
}

// Tournaments settles and resets tournament participation
type Tournaments interface {
	Settle(ctx context.Context) []domain.TournamentSettlement
	ResetPool(ctx context.Context)
}

// Config sizes the rolling schedule
type Config struct {
	PoolSize       int
	SpacingMinutes int
}

// TickResult summarizes one pass
type TickResult struct {
	ActiveEvents int
	Resolution   *domain.ResolutionResult
	Settlements  []domain.TournamentSettlement
}

// Engine runs the periodic tick: refresh schedule, resolve due events, settle tournaments
type Engine struct {
	schedule    Schedule
	resolver    Resolver
	tournaments Tournaments
	locks       *concurrency.LockManager
	cfg         Config
}

// New creates an Engine. Ticks and daily resets share one named lock so they never overlap.
func New(schedule Schedule, resolver Resolver, tournaments Tournaments, locks *concurrency.LockManager, cfg Config) *Engine {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &Engine{
		schedule:    schedule,
		resolver:    resolver,
		tournaments: tournaments,
		locks:       locks,
		cfg:         cfg,
	}
}

// Bootstrap loads or generates today's events once at startup
func (e *Engine) Bootstrap(ctx context.Context) []domain.Event {
	events := e.schedule.FetchActiveEvents(ctx)
	logger.FromContext(ctx).Info(LogMsgBootstrapped, "events", len(events))
	return events
}

// Tick runs one pass, waiting for any pass already in progress
func (e *Engine) Tick(ctx context.Context) (*TickResult, error) {
	var result *TickResult
	err := e.locks.WithLock(concurrency.LockEngineTick, func() error {
		var tickErr error
		result, tickErr = e.tick(ctx)
		return tickErr
	})
	return result, err
}

// Process runs a pass unless one is already running. It satisfies worker.Job so a
// scheduler can drive it; queued ticks that pile up behind a slow pass are dropped.
func (e *Engine) Process(ctx context.Context) error {
	ran, err := e.locks.TryWithLock(concurrency.LockEngineTick, func() error {
		_, tickErr := e.tick(ctx)
		return tickErr
	})
	if !ran {
		logger.FromContext(ctx).Debug(LogMsgTickSkipped)
	}
	return err
}

// DailyReset clears tournament participation and rebuilds the event pool for the new day
func (e *Engine) DailyReset(ctx context.Context) error {
	return e.locks.WithLock(concurrency.LockEngineTick, func() error {
		e.tournaments.ResetPool(ctx)
		events := e.schedule.RegeneratePool(ctx)
		logger.FromContext(ctx).Info(LogMsgDailyResetApplied, "events", len(events))
		return nil
	})
}

func (e *Engine) tick(ctx context.Context) (*TickResult, error) {
	start := time.Now()
	defer func() {
		metrics.TickDuration.Observe(time.Since(start).Seconds())
	}()

	result := &TickResult{}
	result.ActiveEvents = len(e.schedule.MaintainRollingSchedule(ctx, e.cfg.PoolSize, e.cfg.SpacingMinutes))

	var err error
	resolution, resolveErr := e.resolver.Resolve(ctx)
	if resolveErr != nil {
		logger.FromContext(ctx).Error(LogMsgResolutionFailed, "error", resolveErr)
		err = fmt.Errorf("%s: %w", ErrContextResolve, resolveErr)
	}
	result.Resolution = resolution

	// Tournaments settle even when crediting resolution points failed
	result.Settlements = e.tournaments.Settle(ctx)

	if (resolution != nil && resolution.ResolvedEvents > 0) || len(result.Settlements) > 0 {
		logger.FromContext(ctx).Info(LogMsgTickComplete,
			"active_events", result.ActiveEvents,
			"settlements", len(result.Settlements))
	}
	return result, err
}
