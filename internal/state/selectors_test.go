package state_test

import (
	"testing"
	"time"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"

	"github.com/stretchr/testify/assert"
)

func photoIDs(photos []models.Photo) []string {
	ids := make([]string, len(photos))
	for i, p := range photos {
		ids[i] = p.ID
	}
	return ids
}

func TestPhotosByNewest(t *testing.T) {
	photos := state.MockPhotos()

	sorted := state.PhotosByNewest(photos)

	assert.Equal(t, []string{"mock-photo-4", "mock-photo-3", "mock-photo-2", "mock-photo-1"}, photoIDs(sorted))
	assert.Equal(t, "mock-photo-1", photos[0].ID, "input order is untouched")
}

func TestPhotosBetween(t *testing.T) {
	photos := state.MockPhotos()
	feb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	apr := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want []string
	}{
		{"open range", time.Time{}, time.Time{}, []string{"mock-photo-4", "mock-photo-3", "mock-photo-2", "mock-photo-1"}},
		{"from only", apr, time.Time{}, []string{"mock-photo-4"}},
		{"to only", time.Time{}, feb, []string{"mock-photo-1"}},
		{"closed range", feb, apr, []string{"mock-photo-3", "mock-photo-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, photoIDs(state.PhotosBetween(photos, tt.from, tt.to)))
		})
	}
}

func TestUpcomingAndPastEvents(t *testing.T) {
	now := testTime
	events := []models.Event{
		{ID: "past-old", Date: now.AddDate(0, -2, 0)},
		{ID: "future-far", Date: now.AddDate(0, 2, 0)},
		{ID: "past-recent", Date: now.AddDate(0, 0, -1)},
		{ID: "future-near", Date: now.AddDate(0, 0, 1)},
		{ID: "now", Date: now},
	}

	upcoming := state.UpcomingEvents(events, now)
	past := state.PastEvents(events, now)

	var upcomingIDs, pastIDs []string
	for _, e := range upcoming {
		upcomingIDs = append(upcomingIDs, e.ID)
	}
	for _, e := range past {
		pastIDs = append(pastIDs, e.ID)
	}

	assert.Equal(t, []string{"now", "future-near", "future-far"}, upcomingIDs)
	assert.Equal(t, []string{"past-recent", "past-old"}, pastIDs)
}

func TestNotesByRecent(t *testing.T) {
	notes := []models.Note{
		{ID: "a", UpdatedAt: testTime},
		{ID: "b", UpdatedAt: testTime.Add(time.Hour)},
	}

	sorted := state.NotesByRecent(notes)

	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID)
}

func TestUnreadCountAndPendingWishes(t *testing.T) {
	notifications := []models.Notification{{ID: "1"}, {ID: "2", Read: true}, {ID: "3"}}
	wishes := []models.WishItem{{ID: "w1"}, {ID: "w2", Completed: true}}

	assert.Equal(t, 2, state.UnreadCount(notifications))
	pending := state.PendingWishes(wishes)
	if assert.Len(t, pending, 1) {
		assert.Equal(t, "w1", pending[0].ID)
	}
}

func TestFindTravel(t *testing.T) {
	travels := []models.Travel{{ID: "t1", Name: "Lisboa"}}

	travel, ok := state.FindTravel(travels, "t1")
	assert.True(t, ok)
	assert.Equal(t, "Lisboa", travel.Name)

	_, ok = state.FindTravel(travels, "t2")
	assert.False(t, ok)
}
