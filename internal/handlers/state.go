package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"wemoment-backend/internal/middleware"
	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const maxActionBytes = 1 << 20

// Actions that carry business rules and only enter through their own endpoints
var guardedActions = map[state.ActionType]bool{
	state.ActionLogin:                    true,
	state.ActionLogout:                   true,
	state.ActionSetPartner:               true,
	state.ActionUpdateUserProfile:        true,
	state.ActionUpdatePartnerProfile:     true,
	state.ActionSetRelationshipStartDate: true,
	state.ActionGenerateInviteCode:       true,
	state.ActionUseInviteCode:            true,
	state.ActionInvalidateInviteCode:     true,
	state.ActionLoadData:                 true,
	state.ActionLoadMockData:             true,
}

// ErrGuardedAction is returned when a guarded action is sent to the raw dispatch endpoint
var ErrGuardedAction = errors.New("action must be sent through its dedicated endpoint")

// StateHandler exposes the state tree and raw dispatch
type StateHandler struct {
	store *state.Store
}

// NewStateHandler creates a new state handler
func NewStateHandler(store *state.Store) *StateHandler {
	return &StateHandler{store: store}
}

// StateResponse is the state tree plus values derived on read
type StateResponse struct {
	State       models.AppState `json:"state"`
	UnreadCount int             `json:"unreadCount"`
}

// GetState handles GET /api/v1/state
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	current := h.store.State()
	respondJSON(w, http.StatusOK, StateResponse{
		State:       current,
		UnreadCount: state.UnreadCount(current.Notifications),
	})
}

// Dispatch handles POST /api/v1/actions
func (h *StateHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	data, err := io.ReadAll(io.LimitReader(r.Body, maxActionBytes))
	if err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	action, err := DecodeClientAction(data)
	if err != nil {
		status := statusFor(err)
		if errors.Is(err, ErrGuardedAction) {
			status = http.StatusForbidden
		}
		respondError(w, err.Error(), status)
		return
	}

	next := h.store.Dispatch(r.Context(), action)

	log.Info().
		Str("user_id", userID).
		Str("action", string(action.Type())).
		Msg("Action dispatched")

	respondJSON(w, http.StatusOK, StateResponse{
		State:       next,
		UnreadCount: state.UnreadCount(next.Notifications),
	})
}

// DecodeClientAction decodes an action sent by a client and rejects guarded ones
func DecodeClientAction(data []byte) (state.Action, error) {
	action, err := state.DecodeAction(data)
	if err != nil {
		return nil, err
	}
	if guardedActions[action.Type()] {
		return nil, ErrGuardedAction
	}
	return stampAction(action, time.Now()), nil
}

// stampAction fills ids and timestamps the client left empty
func stampAction(action state.Action, now time.Time) state.Action {
	switch a := action.(type) {
	case state.AddEvent:
		if a.Event.ID == "" {
			a.Event.ID = uuid.New().String()
		}
		if a.Event.CreatedAt.IsZero() {
			a.Event.CreatedAt = now
		}
		return a
	case state.AddWishItem:
		if a.WishItem.ID == "" {
			a.WishItem.ID = uuid.New().String()
		}
		if a.WishItem.CreatedAt.IsZero() {
			a.WishItem.CreatedAt = now
		}
		return a
	case state.AddNote:
		if a.Note.ID == "" {
			a.Note.ID = uuid.New().String()
		}
		if a.Note.CreatedAt.IsZero() {
			a.Note.CreatedAt = now
		}
		if a.Note.UpdatedAt.IsZero() {
			a.Note.UpdatedAt = a.Note.CreatedAt
		}
		return a
	case state.UpdateNote:
		a.Note.UpdatedAt = now
		return a
	case state.AddPhoto:
		if a.Photo.ID == "" {
			a.Photo.ID = uuid.New().String()
		}
		if a.Photo.CreatedAt.IsZero() {
			a.Photo.CreatedAt = now
		}
		return a
	case state.AddNotification:
		if a.Notification.ID == "" {
			a.Notification.ID = uuid.New().String()
		}
		if a.Notification.CreatedAt.IsZero() {
			a.Notification.CreatedAt = now
		}
		return a
	case state.AddTravel:
		if a.Travel.ID == "" {
			a.Travel.ID = uuid.New().String()
		}
		if a.Travel.CreatedAt.IsZero() {
			a.Travel.CreatedAt = now
		}
		a.Travel.UpdatedAt = now
		return a
	case state.UpdateTravel:
		a.Travel.UpdatedAt = now
		return a
	}
	return action
}
