package handler

import (
	"context"
	"net/http"

	"github.com/osse101/BetEngine_Go/internal/domain"
)

// LeaderboardSource lists leaderboard rows, highest first
type LeaderboardSource interface {
	Entries(ctx context.Context) []domain.LeaderboardEntry
}

// LeaderboardResponse is the sorted board
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// HandleGetLeaderboard returns the board, optionally truncated by ?limit=
func HandleGetLeaderboard(board LeaderboardSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntQueryParam(r, w, "limit", 0)
		if !ok {
			return
		}

		entries := board.Entries(r.Context())
		if limit > 0 && limit < len(entries) {
			entries = entries[:limit]
		}
		respondJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
	}
}
