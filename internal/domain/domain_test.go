package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_Lifecycle(t *testing.T) {
	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	e := Event{ID: "e1", Sport: SportTennis, StartDate: start}

	assert.False(t, e.HasStarted(start.Add(-time.Second)))
	assert.True(t, e.HasStarted(start), "start instant counts as started")
	assert.True(t, e.IsLocked(start.Add(time.Minute)))
	assert.False(t, e.IsResolved())

	o := OutcomeDraw
	e.Outcome = &o
	assert.True(t, e.IsResolved())
}

func TestEvent_JSONOmitsUnresolvedOutcome(t *testing.T) {
	e := Event{ID: "e1", Sport: SportHockey, HomeTeam: "Rangers", AwayTeam: "Bruins"}
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "outcome")
}

func TestOutcome(t *testing.T) {
	for _, o := range AllOutcomes {
		assert.True(t, o.Valid())
		assert.NotEmpty(t, o.Title())
	}
	assert.False(t, Outcome("overtime").Valid())
	assert.Empty(t, Outcome("overtime").Title())
}

func TestSport(t *testing.T) {
	assert.Equal(t, "Football", SportFootball.Title())
	assert.Equal(t, "Baseball", SportBaseball.Title())
	assert.True(t, SportBasketball.Valid())
	assert.False(t, Sport("curling").Valid())
}

func TestPeriodStats(t *testing.T) {
	tests := []struct {
		name         string
		stats        PeriodStats
		wantAccuracy float64
		wantLosses   int
	}{
		{"empty", PeriodStats{}, 0, 0},
		{"all correct", PeriodStats{Total: 4, Correct: 4}, 1, 0},
		{"mixed", PeriodStats{Total: 4, Correct: 1}, 0.25, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantAccuracy, tt.stats.Accuracy(), 1e-9)
			assert.Equal(t, tt.wantLosses, tt.stats.Losses())
		})
	}
}

func TestParticipation_IsResolved(t *testing.T) {
	p := Participation{TournamentID: "t1"}
	assert.False(t, p.IsResolved())
	p.Result = TournamentResultLost
	assert.True(t, p.IsResolved())
}
