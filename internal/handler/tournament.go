package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/tournament"
)

// TournamentsResponse lists the pool with the acting user's state
type TournamentsResponse struct {
	Tournaments []domain.TournamentView `json:"tournaments"`
}

// JoinTournamentResponse reports whether the entry was paid
type JoinTournamentResponse struct {
	Joined  bool   `json:"joined"`
	Message string `json:"message"`
}

// TournamentHandler serves tournament endpoints
type TournamentHandler struct {
	tournaments tournament.Service
	identity    Identity
}

// NewTournamentHandler creates a new TournamentHandler
func NewTournamentHandler(tournaments tournament.Service, identity Identity) *TournamentHandler {
	return &TournamentHandler{tournaments: tournaments, identity: identity}
}

// HandleList returns the pool
func (h *TournamentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	views := h.tournaments.List(ctx, h.identity.CurrentUserID(ctx))
	if views == nil {
		views = []domain.TournamentView{}
	}
	respondJSON(w, http.StatusOK, TournamentsResponse{Tournaments: views})
}

// HandleJoin pays the entry cost. An unaffordable entry is 402 with joined=false.
func (h *TournamentHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingTournamentID)
		return
	}

	ctx := r.Context()
	joined, err := h.tournaments.Join(ctx, id, h.identity.CurrentUserID(ctx))
	if err != nil {
		respondServiceError(w, r, "Join tournament", err)
		return
	}
	if !joined {
		respondJSON(w, http.StatusPaymentRequired, JoinTournamentResponse{Joined: false, Message: MsgTournamentJoinDeclined})
		return
	}
	respondJSON(w, http.StatusOK, JoinTournamentResponse{Joined: true, Message: MsgTournamentJoinedOK})
}

// HandleReset clears all participation and reloads the pool
func (h *TournamentHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.tournaments.ResetPool(r.Context())
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTournamentsResetDone})
}
