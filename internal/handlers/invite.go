package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"wemoment-backend/internal/middleware"
	"wemoment-backend/internal/models"
	"wemoment-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// InviteHandler handles invite code requests
type InviteHandler struct {
	inviteService *services.InviteService
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(inviteService *services.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

// RedeemInviteRequest represents the request body for redeeming a code
type RedeemInviteRequest struct {
	Code    string       `json:"code"`
	Partner *models.User `json:"partner,omitempty"`
}

// Generate handles POST /api/v1/invites
func (h *InviteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	invite, err := h.inviteService.Generate(ctx)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to generate invite code")
		respondError(w, err.Error(), statusFor(err))
		return
	}

	respondJSON(w, http.StatusCreated, invite)
}

// Redeem handles POST /api/v1/invites/redeem
func (h *InviteHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req RedeemInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Code) == "" {
		respondError(w, "code is required", http.StatusBadRequest)
		return
	}

	invite, err := h.inviteService.Redeem(ctx, req.Code, req.Partner)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Invite code rejected")
		respondError(w, err.Error(), statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, invite)
}

// Invalidate handles DELETE /api/v1/invites/{code}
func (h *InviteHandler) Invalidate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		respondError(w, "code is required", http.StatusBadRequest)
		return
	}

	if err := h.inviteService.Invalidate(r.Context(), code); err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
