package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string           `json:"type"`
	Message string           `json:"message,omitempty"`
	Online  *bool            `json:"online,omitempty"`
	State   *models.AppState `json:"state,omitempty"`
	Action  json.RawMessage  `json:"action,omitempty"`
}

// WS message types
const (
	WSTypeState         = "state"
	WSTypeDispatch      = "dispatch"
	WSTypePartnerStatus = "partner_status"
	WSTypeError         = "error"
)

// wsWriteTimeout bounds a single write to a client
const wsWriteTimeout = 10 * time.Second

// WSConn is the part of *websocket.Conn the hub writes to
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type wsClient struct {
	mu   sync.Mutex
	conn WSConn
}

func (c *wsClient) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// WSHub manages WebSocket connections and mirrors store changes to them
type WSHub struct {
	mu          sync.RWMutex
	connections map[string]*wsClient
	store       *state.Store
}

// NewWSHub creates a new WebSocket hub
func NewWSHub(store *state.Store) *WSHub {
	return &WSHub{
		connections: make(map[string]*wsClient),
		store:       store,
	}
}

// Attach subscribes the hub to store changes
func (h *WSHub) Attach() func() {
	return h.store.Subscribe(func(prev, next models.AppState, action state.Action) {
		h.broadcast(WSMessage{Type: WSTypeState, State: &next}, &next.Auth)
	})
}

// Register registers a new WebSocket connection for a user and sends the current state
func (h *WSHub) Register(userID string, conn WSConn) error {
	h.mu.Lock()
	// Close existing connection if any
	if existing, exists := h.connections[userID]; exists {
		existing.conn.Close()
	}
	h.connections[userID] = &wsClient{conn: conn}
	h.mu.Unlock()

	log.Info().Str("user_id", userID).Msg("WebSocket connection registered")

	current := h.store.State()
	if err := h.SendToUser(userID, WSMessage{Type: WSTypeState, State: &current}); err != nil {
		return err
	}

	h.notifyPartnerStatus(userID, true, current.Auth)
	return nil
}

// Unregister removes the connection for a user if it is still conn
func (h *WSHub) Unregister(userID string, conn WSConn) {
	h.unregister(userID, conn, nil)
}

// unregister uses auth to find the partner to notify, or the store's
// current auth when auth is nil
func (h *WSHub) unregister(userID string, conn WSConn, auth *models.AuthState) {
	h.mu.Lock()
	client, exists := h.connections[userID]
	if !exists || client.conn != conn {
		h.mu.Unlock()
		return
	}
	client.conn.Close()
	delete(h.connections, userID)
	h.mu.Unlock()

	log.Info().Str("user_id", userID).Msg("WebSocket connection unregistered")
	if auth == nil {
		current := h.store.State().Auth
		auth = &current
	}
	h.notifyPartnerStatus(userID, false, *auth)
}

// SendToUser sends a message to a specific user
func (h *WSHub) SendToUser(userID string, message WSMessage) error {
	return h.send(userID, message, nil)
}

func (h *WSHub) send(userID string, message WSMessage, auth *models.AuthState) error {
	h.mu.RLock()
	client, exists := h.connections[userID]
	h.mu.RUnlock()

	if !exists {
		return fmt.Errorf("user %s is not connected", userID)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := client.write(data); err != nil {
		h.unregister(userID, client.conn, auth)
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// Broadcast sends a message to every connected user
func (h *WSHub) Broadcast(message WSMessage) {
	h.broadcast(message, nil)
}

func (h *WSHub) broadcast(message WSMessage, auth *models.AuthState) {
	h.mu.RLock()
	userIDs := make([]string, 0, len(h.connections))
	for id := range h.connections {
		userIDs = append(userIDs, id)
	}
	h.mu.RUnlock()

	for _, id := range userIDs {
		if err := h.send(id, message, auth); err != nil {
			log.Error().Err(err).Str("user_id", id).Msg("Failed to broadcast message")
		}
	}
}

// IsOnline checks if a user is online
func (h *WSHub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.connections[userID]
	return exists
}

// notifyPartnerStatus tells the other member of the couple whether userID is connected
func (h *WSHub) notifyPartnerStatus(userID string, online bool, auth models.AuthState) {
	partnerID := partnerOf(auth, userID)
	if partnerID == "" || !h.IsOnline(partnerID) {
		return
	}

	message := WSMessage{
		Type:   WSTypePartnerStatus,
		Online: &online,
	}
	if err := h.send(partnerID, message, &auth); err != nil {
		log.Error().
			Err(err).
			Str("user_id", partnerID).
			Msg("Failed to notify partner status")
	}
}

func partnerOf(auth models.AuthState, userID string) string {
	switch {
	case auth.User != nil && auth.User.ID == userID && auth.Partner != nil:
		return auth.Partner.ID
	case auth.Partner != nil && auth.Partner.ID == userID && auth.User != nil:
		return auth.User.ID
	}
	return ""
}
