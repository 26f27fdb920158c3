package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"wemoment-backend/internal/middleware"
	"wemoment-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// SessionHandler handles login and logout
type SessionHandler struct {
	authService *services.AuthService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(authService *services.AuthService) *SessionHandler {
	return &SessionHandler{authService: authService}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		respondError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to login")
		respondError(w, err.Error(), statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Logout handles POST /api/v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	h.authService.Logout(r.Context())

	log.Info().Str("user_id", userID).Msg("Session closed")
	w.WriteHeader(http.StatusNoContent)
}
