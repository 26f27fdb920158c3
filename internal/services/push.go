package services

import (
	"context"
	"fmt"
	"time"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"

	"github.com/rs/zerolog/log"
	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/certificate"
	"github.com/sideshow/apns2/payload"
)

// Pusher delivers a single alert to a device
type Pusher interface {
	Push(ctx context.Context, deviceToken, title, body string) error
}

// APNsPusher sends alerts through Apple Push Notification service
type APNsPusher struct {
	client *apns2.Client
	topic  string
}

// NewAPNsPusher loads a .p12 certificate and creates an APNs client
func NewAPNsPusher(certPath, certPassword, topic string, production bool) (*APNsPusher, error) {
	cert, err := certificate.FromP12File(certPath, certPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to load APNs certificate: %w", err)
	}

	client := apns2.NewClient(cert)
	if production {
		client = client.Production()
	} else {
		client = client.Development()
	}

	return &APNsPusher{client: client, topic: topic}, nil
}

// Push sends one alert
func (p *APNsPusher) Push(ctx context.Context, deviceToken, title, body string) error {
	notification := &apns2.Notification{
		DeviceToken: deviceToken,
		Topic:       p.topic,
		Payload:     payload.NewPayload().AlertTitle(title).AlertBody(body).Sound("default"),
	}

	res, err := p.client.PushWithContext(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}
	if !res.Sent() {
		return fmt.Errorf("notification rejected: %d %s", res.StatusCode, res.Reason)
	}
	return nil
}

// NotificationPusher forwards notifications added to the store to the
// couple's devices
type NotificationPusher struct {
	pusher  Pusher
	timeout time.Duration
}

// NewNotificationPusher creates a notifier around pusher
func NewNotificationPusher(pusher Pusher) *NotificationPusher {
	return &NotificationPusher{pusher: pusher, timeout: 10 * time.Second}
}

// Attach subscribes the notifier to store changes
func (n *NotificationPusher) Attach(store *state.Store) func() {
	return store.Subscribe(n.OnChange)
}

// OnChange pushes every notification present in next but not in prev.
// Delivery runs in the background so dispatch never waits on APNs.
func (n *NotificationPusher) OnChange(prev, next models.AppState, action state.Action) {
	if action.Type() == state.ActionLoadData {
		return
	}

	added := addedNotifications(prev.Notifications, next.Notifications)
	if len(added) == 0 {
		return
	}

	tokens := deviceTokens(next.Auth)
	if len(tokens) == 0 {
		return
	}

	go n.deliver(added, tokens)
}

func (n *NotificationPusher) deliver(added []models.Notification, tokens []string) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	for _, item := range added {
		for _, token := range tokens {
			if err := n.pusher.Push(ctx, token, item.Title, item.Message); err != nil {
				log.Error().
					Err(err).
					Str("notification_id", item.ID).
					Msg("Failed to push notification")
			}
		}
	}
}

func addedNotifications(prev, next []models.Notification) []models.Notification {
	seen := make(map[string]struct{}, len(prev))
	for _, item := range prev {
		seen[item.ID] = struct{}{}
	}

	var added []models.Notification
	for _, item := range next {
		if _, ok := seen[item.ID]; !ok {
			added = append(added, item)
		}
	}
	return added
}

func deviceTokens(auth models.AuthState) []string {
	var tokens []string
	for _, u := range []*models.User{auth.User, auth.Partner} {
		if u != nil && u.PushToken != nil && *u.PushToken != "" {
			tokens = append(tokens, *u.PushToken)
		}
	}
	return tokens
}
