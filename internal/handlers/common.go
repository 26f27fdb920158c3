package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wemoment-backend/internal/backend"
	"wemoment-backend/internal/services"
	"wemoment-backend/internal/state"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, backend.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrInviteNotFound),
		errors.Is(err, services.ErrTravelNotFound),
		errors.Is(err, services.ErrChecklistMissing),
		errors.Is(err, services.ErrPhotoNotFound),
		errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrCoupleFull),
		errors.Is(err, services.ErrInviteUsed),
		errors.Is(err, services.ErrOwnInviteCode):
		return http.StatusConflict
	case errors.Is(err, services.ErrInviteExpired):
		return http.StatusGone
	case errors.Is(err, services.ErrInvalidAge),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidProfile),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrItemRequired),
		errors.Is(err, state.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, services.ErrStorageDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, backend.ErrRejected):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
