package domain

import "time"

// Tournament is a static pool definition
type Tournament struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	EntryCost int           `json:"entry_cost"`
	Reward    int           `json:"reward"`
	Duration  time.Duration `json:"duration"`
}

// TournamentResult is the settled state of a participation
type TournamentResult string

const (
	TournamentResultUnresolved TournamentResult = ""
	TournamentResultWon        TournamentResult = "won"
	TournamentResultLost       TournamentResult = "lost"
)

// Participation tracks one user's entry into one tournament
type Participation struct {
	TournamentID string           `json:"tournament_id"`
	UserID       string           `json:"user_id"`
	JoinedAt     time.Time        `json:"joined_at"`
	EndsAt       time.Time        `json:"ends_at"`
	Result       TournamentResult `json:"result,omitempty"`
}

// IsResolved reports whether the participation has a result
func (p Participation) IsResolved() bool {
	return p.Result != TournamentResultUnresolved
}

// TournamentView is a definition joined with the caller's participation state
type TournamentView struct {
	Tournament
	Joined           bool             `json:"joined"`
	EndsAt           *time.Time       `json:"ends_at,omitempty"`
	RemainingSeconds int              `json:"remaining_seconds"`
	Result           TournamentResult `json:"result,omitempty"`
}

// TournamentSettlement records one participation reaching a result
type TournamentSettlement struct {
	TournamentID string `json:"tournament_id"`
	UserID       string `json:"user_id"`
	Won          bool   `json:"won"`
	Reward       int    `json:"reward"`
}
