package stats

import (
	"context"
	"time"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/domain"
)

// Service computes profile statistics from settled predictions
type Service interface {
	UserStats(ctx context.Context, userID string) domain.UserStats
}

// PredictionLister lists a user's predictions
type PredictionLister interface {
	List(ctx context.Context, userID string) []domain.Prediction
}

type service struct {
	predictions PredictionLister
	clock       clock.Clock
}

// NewService creates a new stats service
func NewService(predictions PredictionLister, clk clock.Clock) Service {
	return &service{predictions: predictions, clock: clk}
}

// UserStats counts settled predictions overall and for today, the last 7 days and the
// last 30 days, by creation time. Unsettled predictions are not counted.
func (s *service) UserStats(ctx context.Context, userID string) domain.UserStats {
	now := s.clock.Now()
	dayStart := clock.StartOfDay(now)
	weekStart := now.Add(-WeekWindow)
	monthStart := now.Add(-MonthWindow)

	result := domain.UserStats{UserID: userID}
	var all domain.PeriodStats
	for _, p := range s.predictions.List(ctx, userID) {
		if !p.IsResolved() {
			continue
		}
		correct := *p.IsCorrect
		tally(&all, correct)
		if inWindow(p.CreatedAt, dayStart, now) {
			tally(&result.Day, correct)
		}
		if inWindow(p.CreatedAt, weekStart, now) {
			tally(&result.Week, correct)
		}
		if inWindow(p.CreatedAt, monthStart, now) {
			tally(&result.Month, correct)
		}
	}

	result.Wins = all.Correct
	result.Losses = all.Losses()
	result.Accuracy = all.Accuracy()
	return result
}

func tally(p *domain.PeriodStats, correct bool) {
	p.Total++
	if correct {
		p.Correct++
	}
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
