package utils

import (
	"math/rand"
	"sync"
	"time"

	"github.com/osse101/BetEngine_Go/internal/domain"
)

// RandomSource is the single randomness seam used by resolution, tournaments and the leaderboard.
// Tests inject a scripted source.
type RandomSource interface {
	Intn(n int) int
}

// lockedSource serializes access to a math/rand generator, which is not goroutine safe
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a goroutine safe source. A seed of 0 seeds from the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // Game logic randomness, not security critical
}

func (s *lockedSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// DrawOutcome picks home-win, draw or away-win with equal probability
func DrawOutcome(src RandomSource) domain.Outcome {
	return domain.AllOutcomes[src.Intn(len(domain.AllOutcomes))]
}

// DrawBool returns a fair coin flip
func DrawBool(src RandomSource) bool {
	return src.Intn(2) == 1
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(src RandomSource, min, max int) int {
	if min > max {
		return min
	}
	return src.Intn(max-min+1) + min
}
