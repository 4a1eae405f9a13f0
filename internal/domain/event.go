package domain

import "time"

// Outcome is the result of an event, and also what a prediction picks
type Outcome string

const (
	OutcomeHomeWin Outcome = "homeWin"
	OutcomeDraw    Outcome = "draw"
	OutcomeAwayWin Outcome = "awayWin"
)

// AllOutcomes is the fixed set resolution draws from
var AllOutcomes = []Outcome{OutcomeHomeWin, OutcomeDraw, OutcomeAwayWin}

// Valid reports whether o is one of AllOutcomes
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeHomeWin, OutcomeDraw, OutcomeAwayWin:
		return true
	}
	return false
}

// Title returns the short label shown next to a pick
func (o Outcome) Title() string {
	switch o {
	case OutcomeHomeWin:
		return "Home"
	case OutcomeDraw:
		return "Draw"
	case OutcomeAwayWin:
		return "Away"
	}
	return ""
}

// Event is a scheduled mock match.
// Outcome stays nil until the resolution engine processes the event after StartDate.
type Event struct {
	ID        string    `json:"id"`
	Sport     Sport     `json:"sport"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	StartDate time.Time `json:"startDate"`
	Outcome   *Outcome  `json:"outcome,omitempty"`
}

// HasStarted reports whether now is at or past the start time
func (e Event) HasStarted(now time.Time) bool {
	return !now.Before(e.StartDate)
}

// IsLocked reports whether predictions are closed for the event
func (e Event) IsLocked(now time.Time) bool {
	return e.HasStarted(now)
}

// IsResolved reports whether an outcome has been attached
func (e Event) IsResolved() bool {
	return e.Outcome != nil
}

// ResolutionResult summarizes one resolution pass
type ResolutionResult struct {
	ResolvedEvents     int                `json:"resolved_events"`
	SettledPredictions int                `json:"settled_predictions"`
	CorrectPredictions int                `json:"correct_predictions"`
	PointsAwarded      int                `json:"points_awarded"`
	Outcomes           map[string]Outcome `json:"outcomes,omitempty"`
}
