package handlers

import (
	"encoding/json"
	"net/http"

	"wemoment-backend/internal/middleware"
	"wemoment-backend/internal/models"
	"wemoment-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// ProfileHandler handles profile and relationship requests
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// RelationshipRequest represents the request body for the relationship start date
type RelationshipRequest struct {
	Date string `json:"date"`
}

// DurationResponse describes how long the couple has been together
type DurationResponse struct {
	Duration *string `json:"duration"`
}

// UpdateProfile handles PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.profileService.UpdateProfile(ctx, user)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Profile update rejected")
		respondError(w, err.Error(), statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// SetRelationship handles PUT /api/v1/relationship
func (h *ProfileHandler) SetRelationship(w http.ResponseWriter, r *http.Request) {
	var req RelationshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.profileService.SetRelationshipStartDate(r.Context(), req.Date); err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}

	h.Duration(w, r)
}

// Duration handles GET /api/v1/relationship/duration
func (h *ProfileHandler) Duration(w http.ResponseWriter, r *http.Request) {
	var resp DurationResponse
	if text, ok := h.profileService.RelationshipDuration(); ok {
		resp.Duration = &text
	}
	respondJSON(w, http.StatusOK, resp)
}
