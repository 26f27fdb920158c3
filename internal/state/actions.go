package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wemoment-backend/internal/models"
)

// ActionType names a state transition
type ActionType string

const (
	ActionLogin                    ActionType = "LOGIN"
	ActionLogout                   ActionType = "LOGOUT"
	ActionSetPartner               ActionType = "SET_PARTNER"
	ActionUpdateUserProfile        ActionType = "UPDATE_USER_PROFILE"
	ActionUpdatePartnerProfile     ActionType = "UPDATE_PARTNER_PROFILE"
	ActionSetRelationshipStartDate ActionType = "SET_RELATIONSHIP_START_DATE"
	ActionGenerateInviteCode       ActionType = "GENERATE_INVITE_CODE"
	ActionUseInviteCode            ActionType = "USE_INVITE_CODE"
	ActionInvalidateInviteCode     ActionType = "INVALIDATE_INVITE_CODE"
	ActionAddEvent                 ActionType = "ADD_EVENT"
	ActionUpdateEvent              ActionType = "UPDATE_EVENT"
	ActionDeleteEvent              ActionType = "DELETE_EVENT"
	ActionAddWishItem              ActionType = "ADD_WISH_ITEM"
	ActionUpdateWishItem           ActionType = "UPDATE_WISH_ITEM"
	ActionDeleteWishItem           ActionType = "DELETE_WISH_ITEM"
	ActionAddNote                  ActionType = "ADD_NOTE"
	ActionUpdateNote               ActionType = "UPDATE_NOTE"
	ActionDeleteNote               ActionType = "DELETE_NOTE"
	ActionAddPhoto                 ActionType = "ADD_PHOTO"
	ActionUpdatePhoto              ActionType = "UPDATE_PHOTO"
	ActionDeletePhoto              ActionType = "DELETE_PHOTO"
	ActionAddTravel                ActionType = "ADD_TRAVEL"
	ActionUpdateTravel             ActionType = "UPDATE_TRAVEL"
	ActionDeleteTravel             ActionType = "DELETE_TRAVEL"
	ActionAddNotification          ActionType = "ADD_NOTIFICATION"
	ActionMarkNotificationRead     ActionType = "MARK_NOTIFICATION_READ"
	ActionLoadData                 ActionType = "LOAD_DATA"
	ActionLoadMockData             ActionType = "LOAD_MOCK_DATA"
)

// ErrInvalidAction is returned when a known action carries a malformed payload
var ErrInvalidAction = errors.New("invalid action")

// Action is a request to transition the state tree
type Action interface {
	Type() ActionType
}

type Login struct {
	User    models.User  `json:"user"`
	Partner *models.User `json:"partner,omitempty"`
	Token   *string      `json:"token,omitempty"`
}

type Logout struct{}

type SetPartner struct {
	User models.User `json:"user"`
}

type UpdateUserProfile struct {
	User models.User `json:"user"`
}

type UpdatePartnerProfile struct {
	User models.User `json:"user"`
}

type SetRelationshipStartDate struct {
	Date string `json:"date"`
}

type GenerateInviteCode struct {
	InviteCode models.InviteCode `json:"inviteCode"`
}

// UseInviteCode redeems a code. The reducer does not check expiry or usage;
// callers go through services.InviteService.
type UseInviteCode struct {
	Code   string      `json:"code"`
	User   models.User `json:"user"`
	UsedAt time.Time   `json:"usedAt"`
}

type InvalidateInviteCode struct {
	Code string `json:"code"`
}

type AddEvent struct {
	Event models.Event `json:"event"`
}

type UpdateEvent struct {
	Event models.Event `json:"event"`
}

type DeleteEvent struct {
	ID string `json:"id"`
}

type AddWishItem struct {
	WishItem models.WishItem `json:"wishItem"`
}

type UpdateWishItem struct {
	WishItem models.WishItem `json:"wishItem"`
}

type DeleteWishItem struct {
	ID string `json:"id"`
}

type AddNote struct {
	Note models.Note `json:"note"`
}

type UpdateNote struct {
	Note models.Note `json:"note"`
}

type DeleteNote struct {
	ID string `json:"id"`
}

type AddPhoto struct {
	Photo models.Photo `json:"photo"`
}

type UpdatePhoto struct {
	Photo models.Photo `json:"photo"`
}

type DeletePhoto struct {
	ID string `json:"id"`
}

type AddTravel struct {
	Travel models.Travel `json:"travel"`
}

type UpdateTravel struct {
	Travel models.Travel `json:"travel"`
}

type DeleteTravel struct {
	ID string `json:"id"`
}

type AddNotification struct {
	Notification models.Notification `json:"notification"`
}

type MarkNotificationRead struct {
	ID string `json:"id"`
}

// LoadData replaces the whole tree with a restored snapshot
type LoadData struct {
	Snapshot models.AppState `json:"snapshot"`
}

// LoadMockData seeds demo photos into an empty gallery
type LoadMockData struct{}

// UnknownAction carries an action name this build does not know.
// Reducing it leaves the state unchanged.
type UnknownAction struct {
	Name string `json:"-"`
}

func (Login) Type() ActionType                    { return ActionLogin }
func (Logout) Type() ActionType                   { return ActionLogout }
func (SetPartner) Type() ActionType               { return ActionSetPartner }
func (UpdateUserProfile) Type() ActionType        { return ActionUpdateUserProfile }
func (UpdatePartnerProfile) Type() ActionType     { return ActionUpdatePartnerProfile }
func (SetRelationshipStartDate) Type() ActionType { return ActionSetRelationshipStartDate }
func (GenerateInviteCode) Type() ActionType       { return ActionGenerateInviteCode }
func (UseInviteCode) Type() ActionType            { return ActionUseInviteCode }
func (InvalidateInviteCode) Type() ActionType     { return ActionInvalidateInviteCode }
func (AddEvent) Type() ActionType                 { return ActionAddEvent }
func (UpdateEvent) Type() ActionType              { return ActionUpdateEvent }
func (DeleteEvent) Type() ActionType              { return ActionDeleteEvent }
func (AddWishItem) Type() ActionType              { return ActionAddWishItem }
func (UpdateWishItem) Type() ActionType           { return ActionUpdateWishItem }
func (DeleteWishItem) Type() ActionType           { return ActionDeleteWishItem }
func (AddNote) Type() ActionType                  { return ActionAddNote }
func (UpdateNote) Type() ActionType               { return ActionUpdateNote }
func (DeleteNote) Type() ActionType               { return ActionDeleteNote }
func (AddPhoto) Type() ActionType                 { return ActionAddPhoto }
func (UpdatePhoto) Type() ActionType              { return ActionUpdatePhoto }
func (DeletePhoto) Type() ActionType              { return ActionDeletePhoto }
func (AddTravel) Type() ActionType                { return ActionAddTravel }
func (UpdateTravel) Type() ActionType             { return ActionUpdateTravel }
func (DeleteTravel) Type() ActionType             { return ActionDeleteTravel }
func (AddNotification) Type() ActionType          { return ActionAddNotification }
func (MarkNotificationRead) Type() ActionType     { return ActionMarkNotificationRead }
func (LoadData) Type() ActionType                 { return ActionLoadData }
func (LoadMockData) Type() ActionType             { return ActionLoadMockData }
func (a UnknownAction) Type() ActionType          { return ActionType(a.Name) }

// Envelope is the wire form of an action
type Envelope struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

var actionFactories = map[ActionType]func() Action{
	ActionLogin:                    func() Action { return &Login{} },
	ActionLogout:                   func() Action { return &Logout{} },
	ActionSetPartner:               func() Action { return &SetPartner{} },
	ActionUpdateUserProfile:        func() Action { return &UpdateUserProfile{} },
	ActionUpdatePartnerProfile:     func() Action { return &UpdatePartnerProfile{} },
	ActionSetRelationshipStartDate: func() Action { return &SetRelationshipStartDate{} },
	ActionGenerateInviteCode:       func() Action { return &GenerateInviteCode{} },
	ActionUseInviteCode:            func() Action { return &UseInviteCode{} },
	ActionInvalidateInviteCode:     func() Action { return &InvalidateInviteCode{} },
	ActionAddEvent:                 func() Action { return &AddEvent{} },
	ActionUpdateEvent:              func() Action { return &UpdateEvent{} },
	ActionDeleteEvent:              func() Action { return &DeleteEvent{} },
	ActionAddWishItem:              func() Action { return &AddWishItem{} },
	ActionUpdateWishItem:           func() Action { return &UpdateWishItem{} },
	ActionDeleteWishItem:           func() Action { return &DeleteWishItem{} },
	ActionAddNote:                  func() Action { return &AddNote{} },
	ActionUpdateNote:               func() Action { return &UpdateNote{} },
	ActionDeleteNote:               func() Action { return &DeleteNote{} },
	ActionAddPhoto:                 func() Action { return &AddPhoto{} },
	ActionUpdatePhoto:              func() Action { return &UpdatePhoto{} },
	ActionDeletePhoto:              func() Action { return &DeletePhoto{} },
	ActionAddTravel:                func() Action { return &AddTravel{} },
	ActionUpdateTravel:             func() Action { return &UpdateTravel{} },
	ActionDeleteTravel:             func() Action { return &DeleteTravel{} },
	ActionAddNotification:          func() Action { return &AddNotification{} },
	ActionMarkNotificationRead:     func() Action { return &MarkNotificationRead{} },
	ActionLoadData:                 func() Action { return &LoadData{} },
	ActionLoadMockData:             func() Action { return &LoadMockData{} },
}

// DecodeAction parses the wire form of an action.
// Unknown type names decode to UnknownAction.
func DecodeAction(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	return env.Decode()
}

// Decode resolves the envelope into a concrete action
func (e Envelope) Decode() (Action, error) {
	if e.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrInvalidAction)
	}

	factory, ok := actionFactories[e.Type]
	if !ok {
		return UnknownAction{Name: string(e.Type)}, nil
	}

	ptr := factory()
	if len(e.Payload) > 0 && string(e.Payload) != "null" {
		if err := json.Unmarshal(e.Payload, ptr); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidAction, e.Type, err)
		}
	}
	return deref(ptr), nil
}

// EncodeAction builds the wire form of an action
func EncodeAction(a Action) (Envelope, error) {
	if _, ok := a.(UnknownAction); ok {
		return Envelope{Type: a.Type()}, nil
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal action %s: %w", a.Type(), err)
	}
	return Envelope{Type: a.Type(), Payload: payload}, nil
}

// deref turns the pointer produced by a factory back into a value action
func deref(a Action) Action {
	switch v := a.(type) {
	case *Login:
		return *v
	case *Logout:
		return *v
	case *SetPartner:
		return *v
	case *UpdateUserProfile:
		return *v
	case *UpdatePartnerProfile:
		return *v
	case *SetRelationshipStartDate:
		return *v
	case *GenerateInviteCode:
		return *v
	case *UseInviteCode:
		return *v
	case *InvalidateInviteCode:
		return *v
	case *AddEvent:
		return *v
	case *UpdateEvent:
		return *v
	case *DeleteEvent:
		return *v
	case *AddWishItem:
		return *v
	case *UpdateWishItem:
		return *v
	case *DeleteWishItem:
		return *v
	case *AddNote:
		return *v
	case *UpdateNote:
		return *v
	case *DeleteNote:
		return *v
	case *AddPhoto:
		return *v
	case *UpdatePhoto:
		return *v
	case *DeletePhoto:
		return *v
	case *AddTravel:
		return *v
	case *UpdateTravel:
		return *v
	case *DeleteTravel:
		return *v
	case *AddNotification:
		return *v
	case *MarkNotificationRead:
		return *v
	case *LoadData:
		return *v
	case *LoadMockData:
		return *v
	}
	return a
}
