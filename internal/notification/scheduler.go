package notification

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/metrics"
)

// TimerReminderScheduler fires reminders from in-process timers, one per event.
// Scheduling the same event twice keeps the first timer.
type TimerReminderScheduler struct {
	clock     clock.Clock
	lead      time.Duration
	notifiers []Notifier

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
	wg     sync.WaitGroup
}

// NewTimerReminderScheduler creates a scheduler delivering to every notifier
func NewTimerReminderScheduler(clk clock.Clock, lead time.Duration, notifiers ...Notifier) *TimerReminderScheduler {
	if lead <= 0 {
		lead = DefaultReminderLead
	}
	return &TimerReminderScheduler{
		clock:     clk,
		lead:      lead,
		notifiers: notifiers,
		timers:    make(map[string]*time.Timer),
	}
}

// ScheduleReminder arms a timer for the event. Started events and duplicates are skipped.
func (s *TimerReminderScheduler) ScheduleReminder(ctx context.Context, event domain.Event) error {
	log := logger.FromContext(ctx)
	now := s.clock.Now()
	if event.HasStarted(now) {
		log.Debug(LogMsgReminderSkipped, "event_id", event.ID)
		return nil
	}

	fireAt := FireTime(now, event.StartDate, s.lead)
	reminder := NewReminder(event, fireAt)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	if _, exists := s.timers[reminder.ID]; exists {
		log.Debug(LogMsgReminderDuplicate, "reminder_id", reminder.ID)
		return nil
	}

	s.timers[reminder.ID] = time.AfterFunc(fireAt.Sub(now), func() {
		s.fire(reminder)
	})
	log.Info(LogMsgReminderScheduled, "reminder_id", reminder.ID, "fire_at", fireAt)
	return nil
}

// Pending returns the number of armed reminders
func (s *TimerReminderScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *TimerReminderScheduler) fire(reminder Reminder) {
	s.mu.Lock()
	delete(s.timers, reminder.ID)
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info(LogMsgReminderFired, "reminder_id", reminder.ID)

	for _, n := range s.notifiers {
		if err := n.Notify(ctx, reminder); err != nil {
			log.Warn(LogMsgReminderDeliverFailed, "sink", n.Name(), "reminder_id", reminder.ID, "error", err)
			continue
		}
		metrics.RemindersSent.WithLabelValues(n.Name()).Inc()
	}
}

// Shutdown cancels every pending reminder and waits for in-flight deliveries
func (s *TimerReminderScheduler) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	s.mu.Lock()
	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		log.Debug(LogMsgReminderCancelled, "reminder_id", id)
	}
	s.timers = make(map[string]*time.Timer)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
