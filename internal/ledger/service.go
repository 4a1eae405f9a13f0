package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/event"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/metrics"
)

// Service defines the interface for the points ledger
type Service interface {
	Credit(ctx context.Context, amount int) error
	Debit(ctx context.Context, amount int) bool
	Balance(ctx context.Context) int
}

// Store is the subset of storage.Records the ledger needs
type Store interface {
	LoadPoints(ctx context.Context) (int, bool)
	SavePoints(ctx context.Context, points int) error
}

type service struct {
	store    Store
	notifier *event.Notifier

	mu      sync.Mutex
	loaded  bool
	balance int
}

// NewService creates a new ledger service
func NewService(store Store, notifier *event.Notifier) Service {
	return &service{
		store:    store,
		notifier: notifier,
	}
}

// Credit adds amount to the balance. A zero credit changes nothing and emits no signal.
func (s *service) Credit(ctx context.Context, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%s: %w", ErrContextCredit, domain.ErrInvalidAmount)
	}
	if amount == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	s.balance += amount
	s.persist(ctx)
	metrics.PointsCredited.Add(float64(amount))
	logger.FromContext(ctx).Info(LogMsgPointsCredited, "amount", amount, "balance", s.balance)

	s.notifier.Notify(ctx, event.PredictionsChanged)
	return nil
}

// Debit removes amount only when the balance stays non-negative
func (s *service) Debit(ctx context.Context, amount int) bool {
	if amount < 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	if s.balance-amount < 0 {
		logger.FromContext(ctx).Info(LogMsgDebitRejected, "amount", amount, "balance", s.balance)
		return false
	}

	s.balance -= amount
	s.persist(ctx)
	metrics.PointsDebited.Add(float64(amount))
	logger.FromContext(ctx).Info(LogMsgPointsDebited, "amount", amount, "balance", s.balance)

	s.notifier.Notify(ctx, event.PredictionsChanged)
	return true
}

func (s *service) Balance(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	return s.balance
}

// ensureLoaded must be called with mu held
func (s *service) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.balance, _ = s.store.LoadPoints(ctx)
	s.loaded = true
	logger.FromContext(ctx).Debug(LogMsgBalanceLoaded, "balance", s.balance)
}

// persist must be called with mu held
func (s *service) persist(ctx context.Context) {
	if err := s.store.SavePoints(ctx, s.balance); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistBalanceFailed, "error", err)
	}
}
