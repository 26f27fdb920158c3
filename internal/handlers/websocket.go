package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"wemoment-backend/internal/services"
	"wemoment-backend/internal/state"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var errUnknownMessage = errors.New("unknown message type")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler handles WebSocket connections
type WebSocketHandler struct {
	hub         *services.WSHub
	authService *services.AuthService
	store       *state.Store
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *services.WSHub, authService *services.AuthService, store *state.Store) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
		store:       store,
	}
}

// HandleWebSocket handles GET /ws
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, "token required", http.StatusUnauthorized)
		return
	}

	userID, err := h.authService.Authorize(token)
	if err != nil {
		respondError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	if err := h.hub.Register(userID, conn); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to register WebSocket connection")
		return
	}
	defer h.hub.Unregister(userID, conn)

	log.Info().Str("user_id", userID).Msg("WebSocket connection established")

	ctx := r.Context()
	for {
		_, messageBytes, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("user_id", userID).Msg("WebSocket error")
			}
			break
		}

		var msg services.WSMessage
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to parse WebSocket message")
			h.sendError(userID, "Invalid message format")
			continue
		}

		if err := h.handleMessage(ctx, msg); err != nil {
			log.Error().Err(err).Str("user_id", userID).Str("type", msg.Type).Msg("Failed to handle message")
			h.sendError(userID, err.Error())
		}
	}
}

// handleMessage processes incoming WebSocket messages
func (h *WebSocketHandler) handleMessage(ctx context.Context, msg services.WSMessage) error {
	switch msg.Type {
	case services.WSTypeDispatch:
		action, err := DecodeClientAction(msg.Action)
		if err != nil {
			return err
		}
		// The hub pushes the resulting state to every connection.
		h.store.Dispatch(ctx, action)
		return nil
	default:
		return errUnknownMessage
	}
}

// sendError sends an error message to a user
func (h *WebSocketHandler) sendError(userID, message string) {
	msg := services.WSMessage{
		Type:    services.WSTypeError,
		Message: message,
	}
	if err := h.hub.SendToUser(userID, msg); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to send error message")
	}
}
