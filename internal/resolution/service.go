package resolution

import (
	"context"
	"fmt"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/event"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/prediction"
	"github.com/osse101/BetEngine_Go/internal/utils"
)

// Service defines the interface for the resolution engine
type Service interface {
	Resolve(ctx context.Context) (*domain.ResolutionResult, error)
}

// EventResolver attaches outcomes to started events
type EventResolver interface {
	ResolveDue(ctx context.Context, draw func() domain.Outcome) map[string]domain.Outcome
}

// PredictionSettler settles the acting user's predictions
type PredictionSettler interface {
	ApplyOutcomes(ctx context.Context, userID string, outcomes map[string]domain.Outcome) prediction.Settlement
}

// Ledger is the credit side of the points ledger
type Ledger interface {
	Credit(ctx context.Context, amount int) error
}

// IdentityProvider names the acting user
type IdentityProvider interface {
	CurrentUserID(ctx context.Context) string
}

type service struct {
	events           EventResolver
	predictions      PredictionSettler
	ledger           Ledger
	identity         IdentityProvider
	rng              utils.RandomSource
	notifier         *event.Notifier
	pointsPerCorrect int
}

// NewService creates a new resolution service
func NewService(events EventResolver, predictions PredictionSettler, ledger Ledger, identity IdentityProvider, rng utils.RandomSource, notifier *event.Notifier, pointsPerCorrect int) Service {
	if pointsPerCorrect <= 0 {
		pointsPerCorrect = DefaultPointsPerCorrect
	}
	return &service{
		events:           events,
		predictions:      predictions,
		ledger:           ledger,
		identity:         identity,
		rng:              rng,
		notifier:         notifier,
		pointsPerCorrect: pointsPerCorrect,
	}
}

// Resolve draws outcomes for every started, unresolved event, settles the acting user's
// predictions against them and credits the batch once. A pass with nothing due is a no-op.
func (s *service) Resolve(ctx context.Context) (*domain.ResolutionResult, error) {
	outcomes := s.events.ResolveDue(ctx, func() domain.Outcome {
		return utils.DrawOutcome(s.rng)
	})
	result := &domain.ResolutionResult{ResolvedEvents: len(outcomes)}
	if len(outcomes) == 0 {
		return result, nil
	}
	result.Outcomes = outcomes

	userID := s.identity.CurrentUserID(ctx)
	settlement := s.predictions.ApplyOutcomes(ctx, userID, outcomes)
	result.SettledPredictions = settlement.Settled
	result.CorrectPredictions = settlement.Correct
	result.PointsAwarded = settlement.Correct * s.pointsPerCorrect

	var err error
	if creditErr := s.ledger.Credit(ctx, result.PointsAwarded); creditErr != nil {
		logger.FromContext(ctx).Error(LogMsgCreditFailed, "amount", result.PointsAwarded, "error", creditErr)
		err = fmt.Errorf("%s: %w", ErrContextCredit, creditErr)
	}

	logger.FromContext(ctx).Info(LogMsgResolutionComplete,
		"user_id", userID,
		"resolved_events", result.ResolvedEvents,
		"settled", result.SettledPredictions,
		"correct", result.CorrectPredictions,
		"points", result.PointsAwarded)

	s.notifier.Notify(ctx, event.EventsResolved)
	return result, err
}
