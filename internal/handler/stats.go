package handler

import (
	"net/http"

	"github.com/osse101/BetEngine_Go/internal/stats"
)

// HandleGetStats returns the acting user's prediction record
func HandleGetStats(svc stats.Service, identity Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		respondJSON(w, http.StatusOK, svc.UserStats(ctx, identity.CurrentUserID(ctx)))
	}
}
