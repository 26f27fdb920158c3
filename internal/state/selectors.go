package state

import (
	"sort"
	"time"

	"wemoment-backend/internal/models"
)

// Presentation order is computed here on read and never written back to the tree.

// PhotosByNewest returns photos ordered by CreatedAt, newest first
func PhotosByNewest(photos []models.Photo) []models.Photo {
	out := make([]models.Photo, len(photos))
	copy(out, photos)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// PhotosBetween returns photos whose CreatedAt falls in [from, to], newest first.
// A zero bound is open.
func PhotosBetween(photos []models.Photo, from, to time.Time) []models.Photo {
	out := make([]models.Photo, 0, len(photos))
	for _, p := range photos {
		if !from.IsZero() && p.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && p.CreatedAt.After(to) {
			continue
		}
		out = append(out, p)
	}
	return PhotosByNewest(out)
}

// UpcomingEvents returns events at or after now, soonest first
func UpcomingEvents(events []models.Event, now time.Time) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !e.Date.Before(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// PastEvents returns events before now, most recent first
func PastEvents(events []models.Event, now time.Time) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Date.Before(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// NotesByRecent returns notes ordered by UpdatedAt, most recent first
func NotesByRecent(notes []models.Note) []models.Note {
	out := make([]models.Note, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

// UnreadCount counts notifications not yet read
func UnreadCount(notifications []models.Notification) int {
	n := 0
	for _, item := range notifications {
		if !item.Read {
			n++
		}
	}
	return n
}

// PendingWishes returns wish items not yet completed
func PendingWishes(items []models.WishItem) []models.WishItem {
	out := make([]models.WishItem, 0, len(items))
	for _, w := range items {
		if !w.Completed {
			out = append(out, w)
		}
	}
	return out
}

// FindTravel looks up a travel by id
func FindTravel(travels []models.Travel, id string) (models.Travel, bool) {
	idx := indexOf(travels, id, travelID)
	if idx < 0 {
		return models.Travel{}, false
	}
	return travels[idx], true
}
