package handler

import (
	"context"
	"net/http"

	"github.com/osse101/BetEngine_Go/internal/domain"
)

// EventSource lists the active event pool
type EventSource interface {
	FetchActiveEvents(ctx context.Context) []domain.Event
}

// EventsResponse is the active pool, soonest first
type EventsResponse struct {
	Events []domain.Event `json:"events"`
}

// HandleGetEvents returns today's active events
func HandleGetEvents(events EventSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := events.FetchActiveEvents(r.Context())
		if list == nil {
			list = []domain.Event{}
		}
		respondJSON(w, http.StatusOK, EventsResponse{Events: list})
	}
}
