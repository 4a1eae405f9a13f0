package handler

import (
	"context"
	"net/http"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/prediction"
)

// Identity resolves the acting user for a request
type Identity interface {
	CurrentUserID(ctx context.Context) string
}

// SubmitPredictionRequest represents a pick on one event
type SubmitPredictionRequest struct {
	EventID string `json:"event_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Outcome string `json:"outcome" validate:"required,outcome"`
}

// PredictionsResponse lists the acting user's predictions
type PredictionsResponse struct {
	Predictions []domain.Prediction `json:"predictions"`
}

// PredictionHandler serves prediction endpoints
type PredictionHandler struct {
	predictions prediction.Service
	identity    Identity
}

// NewPredictionHandler creates a new PredictionHandler
func NewPredictionHandler(predictions prediction.Service, identity Identity) *PredictionHandler {
	return &PredictionHandler{predictions: predictions, identity: identity}
}

// HandleSubmit records a prediction for the acting user
func (h *PredictionHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitPredictionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit prediction"); err != nil {
		return
	}

	ctx := r.Context()
	userID := h.identity.CurrentUserID(ctx)
	pred, err := h.predictions.Submit(ctx, req.EventID, userID, domain.Outcome(req.Outcome))
	if err != nil {
		respondServiceError(w, r, "Submit prediction", err)
		return
	}

	logger.FromContext(ctx).Info(LogMsgPredictionCreated, "user_id", userID, "event_id", req.EventID, "outcome", req.Outcome)
	respondJSON(w, http.StatusCreated, pred)
}

// HandleList returns the acting user's predictions
func (h *PredictionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	preds := h.predictions.List(ctx, h.identity.CurrentUserID(ctx))
	if preds == nil {
		preds = []domain.Prediction{}
	}
	respondJSON(w, http.StatusOK, PredictionsResponse{Predictions: preds})
}
