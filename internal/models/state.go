package models

// SnapshotVersion is the current version of the persisted state document
const SnapshotVersion = 1

// AuthState holds the authenticated session and couple linkage
type AuthState struct {
	IsAuthenticated       bool    `json:"isAuthenticated"`
	User                  *User   `json:"user"`
	Partner               *User   `json:"partner"`
	RelationshipStartDate *string `json:"relationshipStartDate,omitempty"`
	InviteCode            *string `json:"inviteCode,omitempty"`
	IsCoupleFull          bool    `json:"isCoupleFull"`
	Token                 *string `json:"token,omitempty"`
}

// CoupleFull reports whether both members of the couple are present
func (a AuthState) CoupleFull() bool {
	return a.User != nil && a.Partner != nil
}

// AppState is the whole application state tree.
// It is persisted and restored as one unit.
type AppState struct {
	Auth          AuthState      `json:"auth"`
	Events        []Event        `json:"events"`
	WishItems     []WishItem     `json:"wishItems"`
	Notes         []Note         `json:"notes"`
	Photos        []Photo        `json:"photos"`
	Notifications []Notification `json:"notifications"`
	InviteCodes   []InviteCode   `json:"inviteCodes"`
	Travels       []Travel       `json:"travels"`
}

// NewAppState returns the empty state tree
func NewAppState() AppState {
	return AppState{
		Events:        []Event{},
		WishItems:     []WishItem{},
		Notes:         []Note{},
		Photos:        []Photo{},
		Notifications: []Notification{},
		InviteCodes:   []InviteCode{},
		Travels:       []Travel{},
	}
}

// IsEmpty reports whether the tree holds no session and no content
func (s AppState) IsEmpty() bool {
	return !s.Auth.IsAuthenticated &&
		s.Auth.User == nil &&
		len(s.Events) == 0 &&
		len(s.WishItems) == 0 &&
		len(s.Notes) == 0 &&
		len(s.Photos) == 0 &&
		len(s.Notifications) == 0 &&
		len(s.InviteCodes) == 0 &&
		len(s.Travels) == 0
}

// Normalize replaces nil collections with empty ones
func (s AppState) Normalize() AppState {
	if s.Events == nil {
		s.Events = []Event{}
	}
	if s.WishItems == nil {
		s.WishItems = []WishItem{}
	}
	if s.Notes == nil {
		s.Notes = []Note{}
	}
	if s.Photos == nil {
		s.Photos = []Photo{}
	}
	if s.Notifications == nil {
		s.Notifications = []Notification{}
	}
	if s.InviteCodes == nil {
		s.InviteCodes = []InviteCode{}
	}
	if s.Travels == nil {
		s.Travels = []Travel{}
	}
	return s
}

// Snapshot is the persisted form of AppState
type Snapshot struct {
	Version int `json:"version"`
	AppState
}
