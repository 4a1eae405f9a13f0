package tournament

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/event"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/metrics"
	"github.com/osse101/BetEngine_Go/internal/utils"
)

// Service defines the interface for the tournament engine
type Service interface {
	List(ctx context.Context, userID string) []domain.TournamentView
	Join(ctx context.Context, tournamentID, userID string) (bool, error)
	Settle(ctx context.Context) []domain.TournamentSettlement
	ResetPool(ctx context.Context)
	NextResetAt() time.Time
}

// Ledger is the part of the points ledger tournaments spend and pay out through
type Ledger interface {
	Credit(ctx context.Context, amount int) error
	Debit(ctx context.Context, amount int) bool
}

type participationKey struct {
	tournamentID string
	userID       string
}

type service struct {
	ledger      Ledger
	clock       clock.Clock
	rng         utils.RandomSource
	notifier    *event.Notifier
	definitions []domain.Tournament

	mu             sync.Mutex
	pool           []domain.Tournament
	participations map[participationKey]*domain.Participation
	nextResetAt    time.Time
}

// NewService creates a tournament engine over the given definitions (DefaultPool when empty)
func NewService(ledger Ledger, clk clock.Clock, rng utils.RandomSource, notifier *event.Notifier, definitions []domain.Tournament) Service {
	if len(definitions) == 0 {
		definitions = DefaultPool
	}
	s := &service{
		ledger:      ledger,
		clock:       clk,
		rng:         rng,
		notifier:    notifier,
		definitions: slices.Clone(definitions),
	}
	s.reset(clk.Now())
	return s
}

// List returns every tournament with the user's participation state
func (s *service) List(ctx context.Context, userID string) []domain.TournamentView {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	views := make([]domain.TournamentView, 0, len(s.pool))
	for _, t := range s.pool {
		view := domain.TournamentView{Tournament: t}
		if p, ok := s.participations[participationKey{t.ID, userID}]; ok {
			endsAt := p.EndsAt
			view.Joined = true
			view.EndsAt = &endsAt
			view.Result = p.Result
			view.RemainingSeconds = int(math.Ceil(max(0, endsAt.Sub(now).Seconds())))
		}
		views = append(views, view)
	}
	return views
}

// Join pays the entry cost and starts the tournament clock for the user.
// An unaffordable entry returns false with no error and no state change.
func (s *service) Join(ctx context.Context, tournamentID, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.pool, func(t domain.Tournament) bool { return t.ID == tournamentID })
	if idx < 0 {
		return false, fmt.Errorf("%s: %w: %s", ErrContextJoin, domain.ErrTournamentNotFound, tournamentID)
	}
	t := s.pool[idx]

	key := participationKey{tournamentID, userID}
	if _, joined := s.participations[key]; joined {
		return false, fmt.Errorf("%s: %w: %s", ErrContextJoin, domain.ErrAlreadyJoined, tournamentID)
	}

	if !s.ledger.Debit(ctx, t.EntryCost) {
		metrics.TournamentJoins.WithLabelValues(metrics.ResultInsufficient).Inc()
		log.Info(LogMsgJoinInsufficient, "tournament_id", tournamentID, "user_id", userID, "entry_cost", t.EntryCost)
		return false, nil
	}

	now := s.clock.Now()
	s.participations[key] = &domain.Participation{
		TournamentID: tournamentID,
		UserID:       userID,
		JoinedAt:     now,
		EndsAt:       now.Add(t.Duration),
	}

	metrics.TournamentJoins.WithLabelValues(metrics.ResultJoined).Inc()
	log.Info(LogMsgTournamentJoined, "tournament_id", tournamentID, "user_id", userID, "ends_at", now.Add(t.Duration))
	s.notifier.Notify(ctx, event.TournamentsUpdated)
	return true, nil
}

// Settle draws a win or loss for every expired, unresolved participation and pays out wins.
// When the reset boundary has passed, the pool is reset afterwards.
func (s *service) Settle(ctx context.Context) []domain.TournamentSettlement {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var settlements []domain.TournamentSettlement
	for _, key := range s.sortedKeys() {
		p := s.participations[key]
		if p.IsResolved() || now.Before(p.EndsAt) {
			continue
		}
		t, ok := s.definition(p.TournamentID)
		if !ok {
			continue
		}

		won := utils.DrawBool(s.rng)
		settlement := domain.TournamentSettlement{TournamentID: t.ID, UserID: p.UserID, Won: won}
		if won {
			p.Result = domain.TournamentResultWon
			settlement.Reward = t.Reward
			if err := s.ledger.Credit(ctx, t.Reward); err != nil {
				log.Error(LogMsgRewardCreditFailed, "tournament_id", t.ID, "error", err)
			}
			metrics.TournamentSettlements.WithLabelValues(metrics.ResultWon).Inc()
		} else {
			p.Result = domain.TournamentResultLost
			metrics.TournamentSettlements.WithLabelValues(metrics.ResultLost).Inc()
		}
		settlements = append(settlements, settlement)
		log.Info(LogMsgTournamentSettled, "tournament_id", t.ID, "user_id", p.UserID, "won", won, "reward", settlement.Reward)
	}

	changed := len(settlements) > 0
	if !now.Before(s.nextResetAt) {
		s.reset(now)
		log.Info(LogMsgPoolReset, "next_reset_at", s.nextResetAt)
		changed = true
	}

	if changed {
		s.notifier.Notify(ctx, event.TournamentsUpdated)
	}
	return settlements
}

// ResetPool clears all participation and reinstates the static definitions
func (s *service) ResetPool(ctx context.Context) {
	s.mu.Lock()
	s.reset(s.clock.Now())
	next := s.nextResetAt
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgPoolReset, "next_reset_at", next)
	s.notifier.Notify(ctx, event.TournamentsUpdated)
}

func (s *service) NextResetAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextResetAt
}

// reset must be called with mu held
func (s *service) reset(now time.Time) {
	s.pool = slices.Clone(s.definitions)
	s.participations = make(map[participationKey]*domain.Participation)
	s.nextResetAt = clock.NextMidnight(now)
}

func (s *service) definition(id string) (domain.Tournament, bool) {
	for _, t := range s.pool {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Tournament{}, false
}

// sortedKeys gives settlement a stable order so scripted randomness is reproducible
func (s *service) sortedKeys() []participationKey {
	keys := make([]participationKey, 0, len(s.participations))
	for k := range s.participations {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b participationKey) int {
		return cmp.Or(strings.Compare(a.tournamentID, b.tournamentID), strings.Compare(a.userID, b.userID))
	})
	return keys
}
