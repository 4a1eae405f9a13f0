package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/logger"
)

// Resetter performs the day rollover
type Resetter interface {
	DailyReset(ctx context.Context) error
}

// DailyResetWorker fires the day rollover at local midnight
type DailyResetWorker struct {
	resetter Resetter
	clock    clock.Clock
	timer    *time.Timer
	next     time.Time
	closed   bool
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyResetWorker creates a new DailyResetWorker
func NewDailyResetWorker(resetter Resetter, clk clock.Clock) *DailyResetWorker {
	return &DailyResetWorker{
		resetter: resetter,
		clock:    clk,
	}
}

// Start schedules the first reset for the coming midnight
func (w *DailyResetWorker) Start() {
	w.mu.Lock()
	w.next = clock.NextMidnight(w.clock.Now())
	w.mu.Unlock()
	w.scheduleNext()
}

// NextResetAt returns the midnight the worker is waiting for
func (w *DailyResetWorker) NextResetAt() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.next
}

// scheduleNext arms the timer for w.next
func (w *DailyResetWorker) scheduleNext() {
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}

	duration := max(0, w.clock.Until(w.next))

	// Stage 1: standby. Wake up shortly before the reset and re-measure.
	if duration > StandbyThreshold {
		wait := duration - StandbyLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgDailyResetStandby, "next_check_in", wait, "next_reset_at", w.next)
		return
	}

	// Stage 2: final approach
	w.timer = time.AfterFunc(duration, w.fire)
	log.Info(LogMsgDailyResetScheduled, "next_reset_at", w.next)
}

func (w *DailyResetWorker) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	early := w.clock.Until(w.next) > JitterTolerance
	if !early {
		w.next = clock.NextMidnight(w.next)
	}
	w.mu.Unlock()

	if !early {
		w.executeReset()
	}
	w.scheduleNext()
}

// executeReset performs the daily reset in a tracked goroutine
func (w *DailyResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_ = w.run(context.Background())
	}()
}

// Trigger runs the reset immediately without moving the scheduled one
func (w *DailyResetWorker) Trigger(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgDailyResetManualTrigger)
	return w.run(ctx)
}

func (w *DailyResetWorker) run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDailyResetStarting)

	if err := w.resetter.DailyReset(ctx); err != nil {
		log.Error(LogMsgDailyResetFailed, "error", err)
		return err
	}

	log.Info(LogMsgDailyResetCompleted)
	return nil
}

// Shutdown cancels the pending timer and waits for any in-flight reset to complete
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgDailyResetShutdown)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgDailyResetShutdownSlow)
		return ctx.Err()
	}
}
