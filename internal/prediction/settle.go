package prediction

import "github.com/osse101/BetEngine_Go/internal/domain"

// Settle marks the user's unresolved prediction for eventID against the drawn outcome.
// It returns a copy of preds with the settlement applied and the correctness flag, or
// preds unchanged and nil when there is nothing to settle.
func Settle(preds []domain.Prediction, eventID, userID string, outcome domain.Outcome) ([]domain.Prediction, *bool) {
	for i, p := range preds {
		if p.EventID != eventID || p.UserID != userID || p.IsResolved() {
			continue
		}
		correct := p.Outcome == outcome
		out := make([]domain.Prediction, len(preds))
		copy(out, preds)
		out[i].IsCorrect = &correct
		return out, &correct
	}
	return preds, nil
}
