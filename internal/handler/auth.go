package handler

import (
	"context"
	"net/http"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/user"
)

// SignInRequest carries the display name for a new local profile
type SignInRequest struct {
	DisplayName string `json:"display_name" validate:"required,notblank,max=40,excludesall=\x00\n\r\t"`
}

// ProfileResponse describes the acting user. Guests have no profile.
type ProfileResponse struct {
	SignedIn bool                `json:"signedIn"`
	UserID   string              `json:"userId"`
	Profile  *domain.UserProfile `json:"profile,omitempty"`
	Points   int                 `json:"points"`
}

// AuthHandler serves sign-in, sign-out and profile endpoints
type AuthHandler struct {
	users  user.Service
	ledger BalanceReader
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users user.Service, ledger BalanceReader) *AuthHandler {
	return &AuthHandler{users: users, ledger: ledger}
}

// HandleSignIn creates and stores a profile
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sign in"); err != nil {
		return
	}

	profile, err := h.users.SignIn(r.Context(), req.DisplayName)
	if err != nil {
		respondServiceError(w, r, "Sign in", err)
		return
	}
	respondJSON(w, http.StatusOK, h.profileResponse(r.Context(), profile))
}

// HandleSignOut drops the stored profile; the session continues as guest
func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	h.users.SignOut(r.Context())
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSignedOut})
}

// HandleProfile returns the acting user
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profileResponse(r.Context(), h.users.CurrentUser(r.Context())))
}

func (h *AuthHandler) profileResponse(ctx context.Context, profile *domain.UserProfile) ProfileResponse {
	resp := ProfileResponse{
		UserID:  domain.GuestUserID,
		Profile: profile,
		Points:  h.ledger.Balance(ctx),
	}
	if profile != nil {
		resp.SignedIn = true
		resp.UserID = profile.ID
	}
	return resp
}
