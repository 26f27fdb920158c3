package state_test

import (
	"testing"
	"time"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populated() models.AppState {
	s := loggedIn()
	s = state.Reduce(s, state.AddEvent{Event: models.Event{ID: "e1", Title: "Cinema"}})
	s = state.Reduce(s, state.AddWishItem{WishItem: models.WishItem{ID: "w1", Title: "Paris"}})
	s = state.Reduce(s, state.AddNote{Note: models.Note{ID: "n1", Title: "Lista", UserID: "u1"}})
	s = state.Reduce(s, state.AddNotification{Notification: models.Notification{ID: "x1", Title: "Oi"}})
	s = state.Reduce(s, state.GenerateInviteCode{InviteCode: models.InviteCode{ID: "i1", Code: "ABCD1234"}})
	s = state.Reduce(s, state.LoadMockData{})
	return s
}

// TestReduce_Invariant_Deterministic checks that equal inputs give equal outputs
func TestReduce_Invariant_Deterministic(t *testing.T) {
	actions := []state.Action{
		state.AddEvent{Event: models.Event{ID: "e2", Title: "Jantar"}},
		state.UseInviteCode{Code: "ABCD1234", User: testUser("u2", "Bruno"), UsedAt: testTime},
		state.MarkNotificationRead{ID: "x1"},
		state.DeleteWishItem{ID: "w1"},
		state.Logout{},
	}

	for _, action := range actions {
		t.Run(string(action.Type()), func(t *testing.T) {
			first := state.Reduce(populated(), action)
			second := state.Reduce(populated(), action)
			assert.Equal(t, first, second)
		})
	}
}

// TestReduce_Invariant_DoesNotMutateInput checks copy-on-write collections
func TestReduce_Invariant_DoesNotMutateInput(t *testing.T) {
	before := populated()
	snapshot := populated()

	actions := []state.Action{
		state.AddEvent{Event: models.Event{ID: "e2"}},
		state.UpdateEvent{Event: models.Event{ID: "e1", Title: "Teatro"}},
		state.DeleteEvent{ID: "e1"},
		state.UpdateNote{Note: models.Note{ID: "n1", Title: "Outra"}},
		state.MarkNotificationRead{ID: "x1"},
		state.UseInviteCode{Code: "ABCD1234", User: testUser("u2", "Bruno"), UsedAt: testTime},
		state.InvalidateInviteCode{Code: "ABCD1234"},
		state.UpdateUserProfile{User: testUser("u1", "Outra")},
		state.DeletePhoto{ID: "mock-photo-1"},
	}

	for _, action := range actions {
		state.Reduce(before, action)
	}

	assert.Equal(t, snapshot, before)
}

// TestReduce_Invariant_CoupleFullTracksMembers checks isCoupleFull after every handled action
func TestReduce_Invariant_CoupleFullTracksMembers(t *testing.T) {
	partner := testUser("u2", "Bruno")

	tests := []struct {
		name   string
		start  models.AppState
		action state.Action
		want   bool
	}{
		{"login alone", models.NewAppState(), state.Login{User: testUser("u1", "Ana")}, false},
		{"login with partner", models.NewAppState(), state.Login{User: testUser("u1", "Ana"), Partner: &partner}, true},
		{"set partner", loggedIn(), state.SetPartner{User: partner}, true},
		{"use invite", populated(), state.UseInviteCode{Code: "ABCD1234", User: partner, UsedAt: testTime}, true},
		{"logout", state.Reduce(loggedIn(), state.SetPartner{User: partner}), state.Logout{}, false},
		{
			"load data with stale flag",
			models.NewAppState(),
			state.LoadData{Snapshot: models.AppState{Auth: models.AuthState{IsCoupleFull: true, User: &models.User{ID: "u1"}}}},
			false,
		},
		{
			"load data with both members",
			models.NewAppState(),
			state.LoadData{Snapshot: models.AppState{Auth: models.AuthState{User: &models.User{ID: "u1"}, Partner: &partner}}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := state.Reduce(tt.start, tt.action)
			assert.Equal(t, tt.want, s.Auth.IsCoupleFull)
			assert.Equal(t, s.Auth.User != nil && s.Auth.Partner != nil, s.Auth.IsCoupleFull)
		})
	}
}

// TestReduce_Invariant_AddThenDeleteRestores checks the add/delete round trip
func TestReduce_Invariant_AddThenDeleteRestores(t *testing.T) {
	start := populated()

	s := state.Reduce(start, state.AddEvent{Event: models.Event{ID: "e9", Title: "Show"}})
	s = state.Reduce(s, state.DeleteEvent{ID: "e9"})

	assert.Equal(t, start.Events, s.Events)
}

// TestReduce_Invariant_MissingIDIsNoop checks updates and deletes of unknown ids
func TestReduce_Invariant_MissingIDIsNoop(t *testing.T) {
	start := populated()

	actions := []state.Action{
		state.UpdateNote{Note: models.Note{ID: "missing", Title: "x"}},
		state.UpdateEvent{Event: models.Event{ID: "missing"}},
		state.DeleteTravel{ID: "missing"},
		state.DeletePhoto{ID: "missing"},
		state.MarkNotificationRead{ID: "missing"},
		state.UseInviteCode{Code: "NOPE0000", User: testUser("u2", "Bruno"), UsedAt: testTime},
	}

	for _, action := range actions {
		t.Run(string(action.Type()), func(t *testing.T) {
			s := state.Reduce(start, action)
			assert.Equal(t, start.Notes, s.Notes)
			assert.Equal(t, start.Events, s.Events)
			assert.Equal(t, start.Travels, s.Travels)
			assert.Equal(t, start.Photos, s.Photos)
			assert.Equal(t, start.Notifications, s.Notifications)
			assert.Equal(t, start.InviteCodes, s.InviteCodes)
		})
	}
}

// TestReduce_Invariant_UnknownActionIsNoop checks forward compatibility
func TestReduce_Invariant_UnknownActionIsNoop(t *testing.T) {
	start := populated()

	s := state.Reduce(start, state.UnknownAction{Name: "ARCHIVE_EVERYTHING"})

	assert.Equal(t, start, s)
}

// TestReduce_Invariant_MockDataNeverOverwrites checks demo seeding only fills an empty gallery
func TestReduce_Invariant_MockDataNeverOverwrites(t *testing.T) {
	own := models.Photo{ID: "p1", URL: "https://cdn/p1.jpg", CreatedAt: testTime}
	s := state.Reduce(loggedIn(), state.AddPhoto{Photo: own})

	s = state.Reduce(s, state.LoadMockData{})

	require.Len(t, s.Photos, 1)
	assert.Equal(t, own, s.Photos[0])
}

// TestReduce_Invariant_InviteUsedOnce checks a used code is not marked again
func TestReduce_Invariant_InviteUsedOnce(t *testing.T) {
	first := testTime
	s := state.Reduce(populated(), state.UseInviteCode{Code: "ABCD1234", User: testUser("u2", "Bruno"), UsedAt: first})

	s = state.Reduce(s, state.UseInviteCode{Code: "ABCD1234", User: testUser("u3", "Carla"), UsedAt: first.Add(time.Hour)})

	require.Len(t, s.InviteCodes, 1)
	require.NotNil(t, s.InviteCodes[0].UsedBy)
	assert.Equal(t, "u2", *s.InviteCodes[0].UsedBy)
	assert.Equal(t, first, *s.InviteCodes[0].UsedAt)
}
