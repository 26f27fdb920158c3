package models

import "time"

// Gender of a user profile
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// User represents the account holder or their linked partner
type User struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Gender      Gender    `json:"gender"`
	Avatar      *string   `json:"avatar,omitempty"`
	DateOfBirth *string   `json:"dateOfBirth,omitempty"`
	PushToken   *string   `json:"pushToken,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EventType classifies a shared event
type EventType string

const (
	EventTypeDate        EventType = "date"
	EventTypeAnniversary EventType = "anniversary"
	EventTypeTrip        EventType = "trip"
	EventTypeOther       EventType = "other"
)

// Valid reports whether t is a known event type
func (t EventType) Valid() bool {
	switch t {
	case EventTypeDate, EventTypeAnniversary, EventTypeTrip, EventTypeOther:
		return true
	}
	return false
}

// Event represents a shared calendar event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    *string   `json:"location,omitempty"`
	Type        EventType `json:"type"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WishCategory classifies a wish list item
type WishCategory string

const (
	WishCategoryTravel     WishCategory = "travel"
	WishCategoryRestaurant WishCategory = "restaurant"
	WishCategoryActivity   WishCategory = "activity"
	WishCategoryDream      WishCategory = "dream"
	WishCategoryOther      WishCategory = "other"
)

// Valid reports whether c is a known wish category
func (c WishCategory) Valid() bool {
	switch c {
	case WishCategoryTravel, WishCategoryRestaurant, WishCategoryActivity, WishCategoryDream, WishCategoryOther:
		return true
	}
	return false
}

// Priority of a wish list item
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// WishItem represents an entry in the couple's wish list
type WishItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    WishCategory `json:"category"`
	Priority    Priority     `json:"priority"`
	Completed   bool         `json:"completed"`
	CreatedBy   string       `json:"createdBy"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Note represents a free-form note owned by one user
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Photo represents a photo in the shared gallery.
// CreatedAt is used for ordering and filtering; Date is kept only for old snapshots.
type Photo struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date,omitempty"`
	UploadedBy  string    `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NotificationType classifies a notification
type NotificationType string

const (
	NotificationTypeEvent       NotificationType = "event"
	NotificationTypeReminder    NotificationType = "reminder"
	NotificationTypeAchievement NotificationType = "achievement"
)

// Valid reports whether t is a known notification type
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeEvent, NotificationTypeReminder, NotificationTypeAchievement:
		return true
	}
	return false
}

// Notification represents an in-app notification
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Date      time.Time        `json:"date"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// InviteCode represents a pairing code issued by one user for their partner
type InviteCode struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
	Used      bool       `json:"used"`
	UsedBy    *string    `json:"usedBy,omitempty"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
}

// Redeemable reports whether the code can still be used at now
func (c InviteCode) Redeemable(now time.Time) bool {
	return !c.Used && c.ExpiresAt.After(now)
}

// Profile is the account record returned by the account backend
type Profile struct {
	User                  User    `json:"user"`
	Partner               *User   `json:"partner,omitempty"`
	RelationshipStartDate *string `json:"relationshipStartDate,omitempty"`
}
