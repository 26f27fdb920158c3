package handlers

import (
	"encoding/json"
	"net/http"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// TravelHandler handles travel checklist and expense requests
type TravelHandler struct {
	travelService *services.TravelService
}

// NewTravelHandler creates a new travel handler
func NewTravelHandler(travelService *services.TravelService) *TravelHandler {
	return &TravelHandler{travelService: travelService}
}

// ChecklistRequest represents the request body for a new checklist item
type ChecklistRequest struct {
	Item     string                   `json:"item"`
	Category models.ChecklistCategory `json:"category"`
}

// AddChecklistItem handles POST /api/v1/travels/{travel_id}/checklist
func (h *TravelHandler) AddChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req ChecklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.travelService.AddChecklistItem(r.Context(), chi.URLParam(r, "travel_id"), req.Item, req.Category)
	if err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// ToggleChecklistItem handles PATCH /api/v1/travels/{travel_id}/checklist/{item_id}
func (h *TravelHandler) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.travelService.ToggleChecklistItem(r.Context(), chi.URLParam(r, "travel_id"), chi.URLParam(r, "item_id"))
	if err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// AddExpense handles POST /api/v1/travels/{travel_id}/expenses
func (h *TravelHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req services.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	expense, err := h.travelService.AddExpense(r.Context(), chi.URLParam(r, "travel_id"), req)
	if err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}
	respondJSON(w, http.StatusCreated, expense)
}

// Summary handles GET /api/v1/travels/{travel_id}/summary
func (h *TravelHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.travelService.Summary(chi.URLParam(r, "travel_id"))
	if err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
