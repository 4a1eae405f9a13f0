package prediction

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/event"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/metrics"
)

// Service defines the interface for prediction operations
type Service interface {
	Submit(ctx context.Context, eventID, userID string, outcome domain.Outcome) (*domain.Prediction, error)
	List(ctx context.Context, userID string) []domain.Prediction
	All(ctx context.Context) []domain.Prediction
	MarkResolved(ctx context.Context, predictionID string, correct bool) error
	ApplyOutcomes(ctx context.Context, userID string, outcomes map[string]domain.Outcome) Settlement
}

// EventLookup finds an event in the active pool
type EventLookup interface {
	FindEvent(ctx context.Context, eventID string) (domain.Event, bool)
}

// Store is the subset of storage.Records the prediction store needs
type Store interface {
	LoadPredictions(ctx context.Context) ([]domain.Prediction, bool)
	SavePredictions(ctx context.Context, preds []domain.Prediction) error
}

// Settlement counts what one ApplyOutcomes call settled
type Settlement struct {
	Settled int
	Correct int
}

type service struct {
	store    Store
	events   EventLookup
	clock    clock.Clock
	notifier *event.Notifier

	mu     sync.Mutex
	loaded bool
	preds  []domain.Prediction
}

// NewService creates a new prediction service
func NewService(store Store, events EventLookup, clk clock.Clock, notifier *event.Notifier) Service {
	return &service{
		store:    store,
		events:   events,
		clock:    clk,
		notifier: notifier,
	}
}

// Submit records the user's pick for an event, replacing any earlier pick for the same event.
// Picks are refused once the event has started.
func (s *service) Submit(ctx context.Context, eventID, userID string, outcome domain.Outcome) (*domain.Prediction, error) {
	log := logger.FromContext(ctx)

	if !outcome.Valid() {
		metrics.PredictionsRejected.WithLabelValues(metrics.ReasonInvalidOutcome).Inc()
		return nil, fmt.Errorf("%s: %w: %q", ErrContextSubmit, domain.ErrInvalidOutcome, outcome)
	}

	// Holding mu across the lock check orders this submit before any settlement of the event.
	s.mu.Lock()
	defer s.mu.Unlock()

	evt, ok := s.events.FindEvent(ctx, eventID)
	if !ok {
		metrics.PredictionsRejected.WithLabelValues(metrics.ReasonUnknownEvent).Inc()
		return nil, fmt.Errorf("%s: %w: %s", ErrContextSubmit, domain.ErrEventNotFound, eventID)
	}

	now := s.clock.Now()
	if evt.IsLocked(now) {
		metrics.PredictionsRejected.WithLabelValues(metrics.ReasonLocked).Inc()
		log.Info(LogMsgPredictionRejected, "event_id", eventID, "user_id", userID, "reason", domain.ErrMsgLockedEvent)
		return nil, fmt.Errorf("%s: %w", ErrContextSubmit, domain.ErrLockedEvent)
	}

	s.ensureLoaded(ctx)
	s.preds = slices.DeleteFunc(s.preds, func(p domain.Prediction) bool {
		return p.EventID == eventID && p.UserID == userID
	})
	pred := domain.Prediction{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: now,
		Outcome:   outcome,
	}
	s.preds = append(s.preds, pred)
	s.persist(ctx)

	metrics.PredictionsSubmitted.Inc()
	log.Info(LogMsgPredictionSubmitted, "prediction_id", pred.ID, "event_id", eventID, "user_id", userID, "outcome", outcome)

	s.notifier.Notify(ctx, event.PredictionsChanged)
	return &pred, nil
}

// List returns the user's predictions in submission order
func (s *service) List(ctx context.Context, userID string) []domain.Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	var out []domain.Prediction
	for _, p := range s.preds {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) All(ctx context.Context) []domain.Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	return slices.Clone(s.preds)
}

// MarkResolved sets the correctness flag once. Marking an already resolved prediction is a no-op.
func (s *service) MarkResolved(ctx context.Context, predictionID string, correct bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	idx := slices.IndexFunc(s.preds, func(p domain.Prediction) bool { return p.ID == predictionID })
	if idx < 0 {
		return fmt.Errorf("%s: %w: %s", ErrContextMarkResolved, domain.ErrPredictionNotFound, predictionID)
	}
	if s.preds[idx].IsResolved() {
		return nil
	}

	s.preds[idx].IsCorrect = &correct
	s.persist(ctx)
	logger.FromContext(ctx).Info(LogMsgPredictionResolved, "prediction_id", predictionID, "correct", correct)

	s.notifier.Notify(ctx, event.PredictionsChanged)
	return nil
}

// ApplyOutcomes settles the user's predictions for newly resolved events in one write
func (s *service) ApplyOutcomes(ctx context.Context, userID string, outcomes map[string]domain.Outcome) Settlement {
	var result Settlement
	if len(outcomes) == 0 {
		return result
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	preds := s.preds
	for eventID, outcome := range outcomes {
		var correct *bool
		preds, correct = Settle(preds, eventID, userID, outcome)
		if correct == nil {
			continue
		}
		result.Settled++
		if *correct {
			result.Correct++
		}
	}

	if result.Settled > 0 {
		s.preds = preds
		s.persist(ctx)
		logger.FromContext(ctx).Info(LogMsgPredictionsSettled, "user_id", userID, "settled", result.Settled, "correct", result.Correct)
		s.notifier.Notify(ctx, event.PredictionsChanged)
	}
	return result
}

// ensureLoaded must be called with mu held
func (s *service) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	if preds, ok := s.store.LoadPredictions(ctx); ok {
		s.preds = preds
	}
}

func (s *service) persist(ctx context.Context) {
	if err := s.store.SavePredictions(ctx, s.preds); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "error", err)
	}
}
