package domain

import "time"

// Prediction is a user's pick for one event.
// IsCorrect is nil until the referenced event resolves.
type Prediction struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Outcome   Outcome   `json:"outcome"`
	IsCorrect *bool     `json:"isCorrect,omitempty"`
}

// IsResolved reports whether the correctness flag has been settled
func (p Prediction) IsResolved() bool {
	return p.IsCorrect != nil
}
