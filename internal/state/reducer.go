package state

import (
	"strings"

	"wemoment-backend/internal/models"
)

// Reduce applies an action to the state and returns the next state.
// It performs no I/O and never mutates s: every collection it changes is
// rebuilt into a fresh slice and user records are replaced, not edited.
// Unknown actions return s unchanged. Lookups by id that miss are no-ops.
func Reduce(s models.AppState, action Action) models.AppState {
	if action == nil {
		return s
	}

	switch a := deref(action).(type) {
	case Login:
		user := a.User
		s.Auth.IsAuthenticated = true
		s.Auth.User = &user
		s.Auth.Partner = copyUser(a.Partner)
		s.Auth.Token = nil
		if a.Token != nil {
			token := *a.Token
			s.Auth.Token = &token
		}

	case Logout:
		return models.NewAppState()

	case SetPartner:
		partner := a.User
		s.Auth.Partner = &partner

	case UpdateUserProfile:
		user := a.User
		s.Auth.User = &user

	case UpdatePartnerProfile:
		partner := a.User
		s.Auth.Partner = &partner

	case SetRelationshipStartDate:
		date := a.Date
		s.Auth.RelationshipStartDate = &date

	case GenerateInviteCode:
		s.InviteCodes = appendItem(s.InviteCodes, a.InviteCode)
		code := a.InviteCode.Code
		s.Auth.InviteCode = &code

	case UseInviteCode:
		s.InviteCodes = markInviteUsed(s.InviteCodes, a)
		partner := a.User
		s.Auth.Partner = &partner

	case InvalidateInviteCode:
		s.InviteCodes = removeWhere(s.InviteCodes, func(c models.InviteCode) bool {
			return strings.EqualFold(c.Code, a.Code)
		})
		if s.Auth.InviteCode != nil && strings.EqualFold(*s.Auth.InviteCode, a.Code) {
			s.Auth.InviteCode = nil
		}

	case AddEvent:
		s.Events = appendItem(s.Events, a.Event)
	case UpdateEvent:
		s.Events = replaceByID(s.Events, a.Event, eventID)
	case DeleteEvent:
		s.Events = removeByID(s.Events, a.ID, eventID)

	case AddWishItem:
		s.WishItems = appendItem(s.WishItems, a.WishItem)
	case UpdateWishItem:
		s.WishItems = replaceByID(s.WishItems, a.WishItem, wishItemID)
	case DeleteWishItem:
		s.WishItems = removeByID(s.WishItems, a.ID, wishItemID)

	case AddNote:
		s.Notes = appendItem(s.Notes, a.Note)
	case UpdateNote:
		s.Notes = replaceByID(s.Notes, a.Note, noteID)
	case DeleteNote:
		s.Notes = removeByID(s.Notes, a.ID, noteID)

	case AddPhoto:
		s.Photos = appendItem(s.Photos, a.Photo)
	case UpdatePhoto:
		s.Photos = replaceByID(s.Photos, a.Photo, photoID)
	case DeletePhoto:
		s.Photos = removeByID(s.Photos, a.ID, photoID)

	case AddTravel:
		s.Travels = appendItem(s.Travels, a.Travel)
	case UpdateTravel:
		s.Travels = replaceByID(s.Travels, a.Travel, travelID)
	case DeleteTravel:
		s.Travels = removeByID(s.Travels, a.ID, travelID)

	case AddNotification:
		s.Notifications = appendItem(s.Notifications, a.Notification)

	case MarkNotificationRead:
		idx := indexOf(s.Notifications, a.ID, notificationID)
		if idx < 0 || s.Notifications[idx].Read {
			return s
		}
		next := make([]models.Notification, len(s.Notifications))
		copy(next, s.Notifications)
		next[idx].Read = true
		s.Notifications = next

	case LoadData:
		s = a.Snapshot.Normalize()

	case LoadMockData:
		if len(s.Photos) == 0 {
			s.Photos = MockPhotos()
		}

	default:
		return s
	}

	s.Auth.IsCoupleFull = s.Auth.CoupleFull()
	return s
}

func markInviteUsed(codes []models.InviteCode, a UseInviteCode) []models.InviteCode {
	idx := -1
	for i, c := range codes {
		if !c.Used && strings.EqualFold(c.Code, a.Code) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return codes
	}

	next := make([]models.InviteCode, len(codes))
	copy(next, codes)
	usedBy := a.User.ID
	usedAt := a.UsedAt
	next[idx].Used = true
	next[idx].UsedBy = &usedBy
	next[idx].UsedAt = &usedAt
	return next
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func eventID(e models.Event) string               { return e.ID }
func wishItemID(w models.WishItem) string         { return w.ID }
func noteID(n models.Note) string                 { return n.ID }
func photoID(p models.Photo) string               { return p.ID }
func travelID(t models.Travel) string             { return t.ID }
func notificationID(n models.Notification) string { return n.ID }

func appendItem[T any](items []T, item T) []T {
	next := make([]T, len(items), len(items)+1)
	copy(next, items)
	return append(next, item)
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func replaceByID[T any](items []T, item T, idOf func(T) string) []T {
	idx := indexOf(items, idOf(item), idOf)
	if idx < 0 {
		return items
	}
	next := make([]T, len(items))
	copy(next, items)
	next[idx] = item
	return next
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	return removeWhere(items, func(item T) bool { return idOf(item) == id })
}

func removeWhere[T any](items []T, match func(T) bool) []T {
	found := false
	for _, item := range items {
		if match(item) {
			found = true
			break
		}
	}
	if !found {
		return items
	}

	next := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			next = append(next, item)
		}
	}
	return next
}
