package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BetEngine_Go/internal/domain"
)

// scriptedSource replays fixed values, wrapping around
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

func TestDrawOutcome(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected domain.Outcome
	}{
		{"first slot is home win", 0, domain.OutcomeHomeWin},
		{"second slot is draw", 1, domain.OutcomeDraw},
		{"third slot is away win", 2, domain.OutcomeAwayWin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DrawOutcome(&scriptedSource{values: []int{tt.value}}))
		})
	}
}

func TestDrawBool(t *testing.T) {
	src := &scriptedSource{values: []int{1, 0}}
	assert.True(t, DrawBool(src))
	assert.False(t, DrawBool(src))
}

func TestRandomInt_Bounds(t *testing.T) {
	src := NewRandomSource(42)
	for i := 0; i < 500; i++ {
		v := RandomInt(src, -10, 25)
		assert.GreaterOrEqual(t, v, -10)
		assert.LessOrEqual(t, v, 25)
	}
	assert.Equal(t, 7, RandomInt(src, 7, 3), "inverted range returns min")
}

func TestNewRandomSource_SeedIsDeterministic(t *testing.T) {
	a := NewRandomSource(7)
	b := NewRandomSource(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, 0, a.Intn(0))
}

func TestDrawOutcome_CoversAllOutcomes(t *testing.T) {
	src := NewRandomSource(1)
	seen := map[domain.Outcome]bool{}
	for i := 0; i < 300; i++ {
		seen[DrawOutcome(src)] = true
	}
	assert.Len(t, seen, 3)
}
