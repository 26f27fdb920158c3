package state_test

import (
	"testing"
	"time"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func testUser(id, name string) models.User {
	return models.User{
		ID:        id,
		FirstName: name,
		Email:     id + "@example.com",
		Gender:    models.GenderFemale,
		CreatedAt: testTime,
	}
}

func loggedIn() models.AppState {
	return state.Reduce(models.NewAppState(), state.Login{User: testUser("u1", "Ana")})
}

func TestReduceLogin(t *testing.T) {
	token := "backend-token"
	partner := testUser("u2", "Bruno")

	s := state.Reduce(models.NewAppState(), state.Login{
		User:    testUser("u1", "Ana"),
		Partner: &partner,
		Token:   &token,
	})

	assert.True(t, s.Auth.IsAuthenticated)
	require.NotNil(t, s.Auth.User)
	assert.Equal(t, "u1", s.Auth.User.ID)
	require.NotNil(t, s.Auth.Partner)
	assert.Equal(t, "u2", s.Auth.Partner.ID)
	require.NotNil(t, s.Auth.Token)
	assert.Equal(t, token, *s.Auth.Token)
	assert.True(t, s.Auth.IsCoupleFull)
}

func TestReduceLoginWithoutPartner(t *testing.T) {
	s := loggedIn()

	assert.True(t, s.Auth.IsAuthenticated)
	assert.Nil(t, s.Auth.Partner)
	assert.False(t, s.Auth.IsCoupleFull)
}

func TestReduceLoginWithoutTokenDropsPreviousToken(t *testing.T) {
	token := "ana-token"
	s := state.Reduce(models.NewAppState(), state.Login{User: testUser("u1", "Ana"), Token: &token})
	require.NotNil(t, s.Auth.Token)

	s = state.Reduce(s, state.Login{User: testUser("u3", "Carla")})

	assert.Equal(t, "u3", s.Auth.User.ID)
	assert.Nil(t, s.Auth.Token)
}

func TestReduceLogoutResetsEverything(t *testing.T) {
	s := loggedIn()
	s = state.Reduce(s, state.AddEvent{Event: models.Event{ID: "e1", Title: "Cinema"}})
	s = state.Reduce(s, state.LoadMockData{})

	s = state.Reduce(s, state.Logout{})

	assert.Equal(t, models.NewAppState(), s)
}

func TestReduceSetPartner(t *testing.T) {
	s := state.Reduce(loggedIn(), state.SetPartner{User: testUser("u2", "Bruno")})

	require.NotNil(t, s.Auth.Partner)
	assert.Equal(t, "Bruno", s.Auth.Partner.FirstName)
	assert.True(t, s.Auth.IsCoupleFull)
}

func TestReduceUpdateProfiles(t *testing.T) {
	s := state.Reduce(loggedIn(), state.SetPartner{User: testUser("u2", "Bruno")})

	updated := testUser("u1", "Ana Maria")
	s = state.Reduce(s, state.UpdateUserProfile{User: updated})
	require.NotNil(t, s.Auth.User)
	assert.Equal(t, "Ana Maria", s.Auth.User.FirstName)

	partner := testUser("u2", "Bruno Costa")
	s = state.Reduce(s, state.UpdatePartnerProfile{User: partner})
	require.NotNil(t, s.Auth.Partner)
	assert.Equal(t, "Bruno Costa", s.Auth.Partner.FirstName)
	assert.True(t, s.Auth.IsCoupleFull)
}

func TestReduceSetRelationshipStartDate(t *testing.T) {
	s := state.Reduce(loggedIn(), state.SetRelationshipStartDate{Date: "2020-02-14"})

	require.NotNil(t, s.Auth.RelationshipStartDate)
	assert.Equal(t, "2020-02-14", *s.Auth.RelationshipStartDate)
}

func TestReduceInviteCodeLifecycle(t *testing.T) {
	code := models.InviteCode{
		ID:        "i1",
		Code:      "ABCD1234",
		CreatedBy: "u1",
		CreatedAt: testTime,
		ExpiresAt: testTime.Add(7 * 24 * time.Hour),
	}

	s := state.Reduce(loggedIn(), state.GenerateInviteCode{InviteCode: code})
	require.Len(t, s.InviteCodes, 1)
	require.NotNil(t, s.Auth.InviteCode)
	assert.Equal(t, "ABCD1234", *s.Auth.InviteCode)

	usedAt := testTime.Add(time.Hour)
	s = state.Reduce(s, state.UseInviteCode{Code: "abcd1234", User: testUser("u2", "Bruno"), UsedAt: usedAt})

	require.Len(t, s.InviteCodes, 1)
	used := s.InviteCodes[0]
	assert.True(t, used.Used)
	require.NotNil(t, used.UsedBy)
	assert.Equal(t, "u2", *used.UsedBy)
	require.NotNil(t, used.UsedAt)
	assert.Equal(t, usedAt, *used.UsedAt)
	require.NotNil(t, s.Auth.Partner)
	assert.Equal(t, "u2", s.Auth.Partner.ID)
	assert.True(t, s.Auth.IsCoupleFull)
}

func TestReduceInvalidateInviteCode(t *testing.T) {
	s := state.Reduce(loggedIn(), state.GenerateInviteCode{InviteCode: models.InviteCode{ID: "i1", Code: "ZZZZ9999"}})
	s = state.Reduce(s, state.GenerateInviteCode{InviteCode: models.InviteCode{ID: "i2", Code: "YYYY8888"}})

	s = state.Reduce(s, state.InvalidateInviteCode{Code: "yyyy8888"})

	require.Len(t, s.InviteCodes, 1)
	assert.Equal(t, "ZZZZ9999", s.InviteCodes[0].Code)
	assert.Nil(t, s.Auth.InviteCode)
}

func TestReduceInvalidateOtherCodeKeepsCurrent(t *testing.T) {
	s := state.Reduce(loggedIn(), state.GenerateInviteCode{InviteCode: models.InviteCode{ID: "i1", Code: "ZZZZ9999"}})

	s = state.Reduce(s, state.InvalidateInviteCode{Code: "NOPE0000"})

	assert.Len(t, s.InviteCodes, 1)
	require.NotNil(t, s.Auth.InviteCode)
	assert.Equal(t, "ZZZZ9999", *s.Auth.InviteCode)
}

func TestReduceCollections(t *testing.T) {
	tests := []struct {
		name   string
		add    state.Action
		update state.Action
		remove state.Action
		count  func(models.AppState) int
		check  func(t *testing.T, s models.AppState)
	}{
		{
			name:   "events",
			add:    state.AddEvent{Event: models.Event{ID: "e1", Title: "Cinema", Type: models.EventTypeDate}},
			update: state.UpdateEvent{Event: models.Event{ID: "e1", Title: "Teatro", Type: models.EventTypeDate}},
			remove: state.DeleteEvent{ID: "e1"},
			count:  func(s models.AppState) int { return len(s.Events) },
			check: func(t *testing.T, s models.AppState) {
				assert.Equal(t, "Teatro", s.Events[0].Title)
			},
		},
		{
			name:   "wish items",
			add:    state.AddWishItem{WishItem: models.WishItem{ID: "w1", Title: "Paris"}},
			update: state.UpdateWishItem{WishItem: models.WishItem{ID: "w1", Title: "Paris", Completed: true}},
			remove: state.DeleteWishItem{ID: "w1"},
			count:  func(s models.AppState) int { return len(s.WishItems) },
			check: func(t *testing.T, s models.AppState) {
				assert.True(t, s.WishItems[0].Completed)
			},
		},
		{
			name:   "notes",
			add:    state.AddNote{Note: models.Note{ID: "n1", Title: "Lista", UserID: "u1"}},
			update: state.UpdateNote{Note: models.Note{ID: "n1", Title: "Lista de compras", UserID: "u1"}},
			remove: state.DeleteNote{ID: "n1"},
			count:  func(s models.AppState) int { return len(s.Notes) },
			check: func(t *testing.T, s models.AppState) {
				assert.Equal(t, "Lista de compras", s.Notes[0].Title)
			},
		},
		{
			name:   "photos",
			add:    state.AddPhoto{Photo: models.Photo{ID: "p1", URL: "https://cdn/p1.jpg"}},
			update: state.UpdatePhoto{Photo: models.Photo{ID: "p1", URL: "https://cdn/p1.jpg", Title: "Praia"}},
			remove: state.DeletePhoto{ID: "p1"},
			count:  func(s models.AppState) int { return len(s.Photos) },
			check: func(t *testing.T, s models.AppState) {
				assert.Equal(t, "Praia", s.Photos[0].Title)
			},
		},
		{
			name:   "travels",
			add:    state.AddTravel{Travel: models.Travel{ID: "t1", Name: "Lisboa"}},
			update: state.UpdateTravel{Travel: models.Travel{ID: "t1", Name: "Lisboa e Porto"}},
			remove: state.DeleteTravel{ID: "t1"},
			count:  func(s models.AppState) int { return len(s.Travels) },
			check: func(t *testing.T, s models.AppState) {
				assert.Equal(t, "Lisboa e Porto", s.Travels[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := state.Reduce(loggedIn(), tt.add)
			require.Equal(t, 1, tt.count(s))

			s = state.Reduce(s, tt.update)
			require.Equal(t, 1, tt.count(s))
			tt.check(t, s)

			s = state.Reduce(s, tt.remove)
			assert.Equal(t, 0, tt.count(s))
		})
	}
}

func TestReduceNotifications(t *testing.T) {
	s := state.Reduce(loggedIn(), state.AddNotification{Notification: models.Notification{
		ID:    "n1",
		Title: "Aniversário",
		Type:  models.NotificationTypeReminder,
	}})
	require.Len(t, s.Notifications, 1)
	assert.False(t, s.Notifications[0].Read)

	s = state.Reduce(s, state.MarkNotificationRead{ID: "n1"})
	assert.True(t, s.Notifications[0].Read)
	assert.Equal(t, 0, state.UnreadCount(s.Notifications))
}

func TestReduceLoadMockData(t *testing.T) {
	s := state.Reduce(models.NewAppState(), state.LoadMockData{})

	assert.Equal(t, state.MockPhotos(), s.Photos)
	assert.False(t, s.Auth.IsAuthenticated)
}

func TestReduceLoadDataNormalizesCollections(t *testing.T) {
	snapshot := models.AppState{
		Auth:   models.AuthState{IsAuthenticated: true, User: &models.User{ID: "u1"}},
		Events: []models.Event{{ID: "e1"}},
	}

	s := state.Reduce(models.NewAppState(), state.LoadData{Snapshot: snapshot})

	assert.Len(t, s.Events, 1)
	assert.NotNil(t, s.Photos)
	assert.NotNil(t, s.Travels)
	assert.NotNil(t, s.InviteCodes)
	assert.True(t, s.Auth.IsAuthenticated)
}

func TestReduceAcceptsPointerActions(t *testing.T) {
	s := state.Reduce(loggedIn(), &state.AddEvent{Event: models.Event{ID: "e1"}})

	assert.Len(t, s.Events, 1)
}

func TestReduceNilActionReturnsSameState(t *testing.T) {
	s := loggedIn()

	assert.Equal(t, s, state.Reduce(s, nil))
}
