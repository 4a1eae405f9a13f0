package leaderboard

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/utils"
)

// Service is a cosmetic leaderboard. Its points never touch the ledger.
type Service interface {
	Entries(ctx context.Context) []domain.LeaderboardEntry
	// Process nudges a few random entries and re-sorts; it satisfies worker.Job
	Process(ctx context.Context) error
}

type service struct {
	mu      sync.RWMutex
	entries []domain.LeaderboardEntry
	rng     utils.RandomSource
}

// NewService seeds one entry per name with random starting points
func NewService(rng utils.RandomSource) Service {
	entries := make([]domain.LeaderboardEntry, 0, len(Names))
	for i, name := range Names {
		entries = append(entries, domain.LeaderboardEntry{
			ID:     strconv.Itoa(i + 1),
			Name:   name,
			Points: utils.RandomInt(rng, MinInitialPoints, MaxInitialPoints),
		})
	}
	sortEntries(entries)
	return &service{entries: entries, rng: rng}
}

func (s *service) Entries(ctx context.Context) []domain.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

func (s *service) Process(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return nil
	}
	for range NudgesPerTick {
		idx := s.rng.Intn(len(s.entries))
		s.entries[idx].Points += utils.RandomInt(s.rng, MinNudge, MaxNudge)
	}
	sortEntries(s.entries)

	logger.FromContext(ctx).Debug(LogMsgLeaderboardUpdated, "leader", s.entries[0].Name)
	return nil
}

// sortEntries orders by points descending, ties broken by id
func sortEntries(entries []domain.LeaderboardEntry) {
	slices.SortStableFunc(entries, func(a, b domain.LeaderboardEntry) int {
		return cmp.Or(cmp.Compare(b.Points, a.Points), cmp.Compare(a.ID, b.ID))
	})
}
