package schedule

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/metrics"
	"github.com/osse101/BetEngine_Go/internal/notification"
)

// Service defines the interface for the event schedule manager
type Service interface {
	FetchActiveEvents(ctx context.Context) []domain.Event
	MaintainRollingSchedule(ctx context.Context, targetCount int, spacingMinutes int) []domain.Event
	Generate(index int, start time.Time) domain.Event
	RegeneratePool(ctx context.Context) []domain.Event
	FindEvent(ctx context.Context, eventID string) (domain.Event, bool)
	ResolveDue(ctx context.Context, draw func() domain.Outcome) map[string]domain.Outcome
}

// Store is the subset of storage.Records the schedule needs
type Store interface {
	LoadEvents(ctx context.Context) ([]domain.Event, bool)
	SaveEvents(ctx context.Context, events []domain.Event) error
}

// Config sizes the daily pool
type Config struct {
	PoolSize int
	Spacing  time.Duration
}

type service struct {
	store     Store
	clock     clock.Clock
	reminders notification.ReminderScheduler
	cfg       Config

	mu     sync.Mutex
	loaded bool
	events []domain.Event
}

// NewService creates a new schedule service. reminders may be nil.
func NewService(store Store, clk clock.Clock, reminders notification.ReminderScheduler, cfg Config) Service {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = DefaultPoolSize
	}
	if cfg.Spacing <= 0 {
		cfg.Spacing = DefaultSpacing
	}
	return &service{
		store:     store,
		clock:     clk,
		reminders: reminders,
		cfg:       cfg,
	}
}

// FetchActiveEvents returns today's pool, generating a fresh one when the cached pool
// is empty, unreadable, or was generated on an earlier day.
func (s *service) FetchActiveEvents(ctx context.Context) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	now := s.clock.Now()
	if len(s.events) > 0 && clock.SameDay(now, earliestStart(s.events)) {
		return slices.Clone(s.events)
	}
	if len(s.events) > 0 {
		logger.FromContext(ctx).Info(LogMsgPoolStale, "earliest", earliestStart(s.events))
	}
	return s.regenerate(ctx, now)
}

// RegeneratePool discards the current pool and generates a new one unconditionally
func (s *service) RegeneratePool(ctx context.Context) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	return s.regenerate(ctx, s.clock.Now())
}

// MaintainRollingSchedule prunes resolved events and tops the pool up to targetCount,
// continuing the cadence from the latest scheduled start.
func (s *service) MaintainRollingSchedule(ctx context.Context, targetCount int, spacingMinutes int) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	log := logger.FromContext(ctx)
	now := s.clock.Now()
	spacing := time.Duration(spacingMinutes) * time.Minute
	if spacing <= 0 {
		spacing = s.cfg.Spacing
	}

	kept := make([]domain.Event, 0, len(s.events))
	for _, e := range s.events {
		if e.HasStarted(now) && e.IsResolved() {
			continue
		}
		kept = append(kept, e)
	}
	pruned := len(s.events) - len(kept)

	last := now
	if len(kept) > 0 {
		last = latestStart(kept)
	}
	next := now.Add(spacing)
	if candidate := last.Add(spacing); candidate.After(next) {
		next = candidate
	}

	var added []domain.Event
	for len(kept)+len(added) < targetCount {
		added = append(added, s.Generate(slotIndex(next, spacing), next))
		next = next.Add(spacing)
	}

	if pruned == 0 && len(added) == 0 {
		return slices.Clone(s.events)
	}

	kept = append(kept, added...)
	sortByStart(kept)
	s.events = kept
	s.persist(ctx)
	s.scheduleReminders(ctx, added)

	if pruned > 0 {
		log.Debug(LogMsgRollingPruned, "count", pruned)
	}
	if len(added) > 0 {
		log.Info(LogMsgRollingAppended, "count", len(added), "pool_size", len(kept))
	}
	return slices.Clone(s.events)
}

// Generate builds the event for a rotation index. Only the id is random.
func (s *service) Generate(index int, start time.Time) domain.Event {
	return generate(index, start)
}

// FindEvent looks an event up in the current pool
func (s *service) FindEvent(ctx context.Context, eventID string) (domain.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	for _, e := range s.events {
		if e.ID == eventID {
			return e, true
		}
	}
	return domain.Event{}, false
}

// ResolveDue attaches a drawn outcome to every started, unresolved event and persists
// the pool when anything changed. The returned map is keyed by event id.
func (s *service) ResolveDue(ctx context.Context, draw func() domain.Outcome) map[string]domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	now := s.clock.Now()
	resolved := make(map[string]domain.Outcome)
	for i := range s.events {
		e := &s.events[i]
		if !e.HasStarted(now) || e.IsResolved() {
			continue
		}
		outcome := draw()
		e.Outcome = &outcome
		resolved[e.ID] = outcome
	}

	if len(resolved) > 0 {
		s.persist(ctx)
		metrics.EventsResolved.Add(float64(len(resolved)))
		logger.FromContext(ctx).Info(LogMsgEventsResolved, "count", len(resolved))
	}
	return resolved
}

// ensureLoaded must be called with mu held
func (s *service) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	if events, ok := s.store.LoadEvents(ctx); ok {
		sortByStart(events)
		s.events = events
	}
}

// regenerate must be called with mu held
func (s *service) regenerate(ctx context.Context, now time.Time) []domain.Event {
	events := make([]domain.Event, 0, s.cfg.PoolSize)
	for i := 0; i < s.cfg.PoolSize; i++ {
		start := now.Add(time.Duration(i+1) * s.cfg.Spacing)
		events = append(events, s.Generate(i, start))
	}
	s.events = events
	s.persist(ctx)
	s.scheduleReminders(ctx, events)

	logger.FromContext(ctx).Info(LogMsgPoolRegenerated, "count", len(events))
	return slices.Clone(events)
}

func (s *service) persist(ctx context.Context) {
	if err := s.store.SaveEvents(ctx, s.events); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "error", err)
	}
}

func (s *service) scheduleReminders(ctx context.Context, events []domain.Event) {
	if s.reminders == nil {
		return
	}
	for _, e := range events {
		if err := s.reminders.ScheduleReminder(ctx, e); err != nil {
			logger.FromContext(ctx).Debug(LogMsgReminderFailed, "event_id", e.ID, "error", err)
		}
	}
}

func generate(index int, start time.Time) domain.Event {
	if index < 0 {
		index = -index
	}
	sport := domain.AllSports[index%len(domain.AllSports)]
	teams := Rosters[sport]
	metrics.EventsGenerated.WithLabelValues(string(sport)).Inc()
	return domain.Event{
		ID:        uuid.New().String(),
		Sport:     sport,
		HomeTeam:  teams[index%TeamsPerSport],
		AwayTeam:  teams[(index+1)%TeamsPerSport],
		StartDate: start,
	}
}

// slotIndex numbers spacing-sized slots from local midnight so the rotation advances through the day
func slotIndex(start time.Time, spacing time.Duration) int {
	return int(start.Sub(clock.StartOfDay(start)) / spacing)
}

func sortByStart(events []domain.Event) {
	slices.SortStableFunc(events, func(a, b domain.Event) int {
		return a.StartDate.Compare(b.StartDate)
	})
}

func earliestStart(events []domain.Event) time.Time {
	earliest := events[0].StartDate
	for _, e := range events[1:] {
		if e.StartDate.Before(earliest) {
			earliest = e.StartDate
		}
	}
	return earliest
}

func latestStart(events []domain.Event) time.Time {
	latest := events[0].StartDate
	for _, e := range events[1:] {
		if e.StartDate.After(latest) {
			latest = e.StartDate
		}
	}
	return latest
}
