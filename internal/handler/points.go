package handler

import (
	"context"
	"net/http"
)

// BalanceReader reads the points balance
type BalanceReader interface {
	Balance(ctx context.Context) int
}

// PointsResponse carries the current balance
type PointsResponse struct {
	Points int `json:"points"`
}

// HandleGetPoints returns the ledger balance
func HandleGetPoints(ledger BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, PointsResponse{Points: ledger.Balance(r.Context())})
	}
}
