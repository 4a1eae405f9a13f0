package domain

// PeriodStats counts settled predictions in a time window
type PeriodStats struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

// Accuracy returns Correct/Total, or 0 when nothing settled
func (p PeriodStats) Accuracy() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Total)
}

// Losses returns the number of incorrect predictions
func (p PeriodStats) Losses() int {
	return max(0, p.Total-p.Correct)
}

// UserStats groups period stats for the profile screen
type UserStats struct {
	UserID   string      `json:"userId"`
	Wins     int         `json:"wins"`
	Losses   int         `json:"losses"`
	Accuracy float64     `json:"accuracy"`
	Day      PeriodStats `json:"day"`
	Week     PeriodStats `json:"week"`
	Month    PeriodStats `json:"month"`
}

// LeaderboardEntry is a cosmetic leaderboard row
type LeaderboardEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}
