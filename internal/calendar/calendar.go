// Package calendar supplies the dashboard's event data: a static fixture
// or an ICS file, projected onto the approval calendar.
package calendar

import (
	"time"

	"nexus-portal/internal/models"
)

func date(year, month, day, hour, min int) time.Time {
	return time.Date(year, time.Month(month), day, hour, min, 0, 0, time.Local)
}

// Fixture returns the built-in set of event requests shown on the
// dashboard when no ICS source is configured.
func Fixture() []models.CalendarEvent {
	return []models.CalendarEvent{
		{
			ID:        1,
			Title:     "Tech Conference",
			Start:     date(2025, 4, 15, 10, 0),
			End:       date(2025, 4, 15, 15, 0),
			Details:   "Tech talks and networking event.",
			Location:  "Convention Center",
			Organizer: "Tech Association",
			Status:    models.StatusApproved,
		},
		{
			ID:        2,
			Title:     "Art Exhibition",
			Start:     date(2025, 4, 18, 12, 0),
			End:       date(2025, 4, 18, 18, 0),
			Details:   "Local artists showcasing their work.",
			Location:  "Downtown Gallery",
			Organizer: "Arts Council",
			Status:    models.StatusPending,
		},
		{
			ID:        3,
			Title:     "Music Festival",
			Start:     date(2025, 4, 22, 14, 0),
			End:       date(2025, 4, 22, 23, 0),
			Details:   "Live bands and performances all day.",
			Location:  "City Park",
			Organizer: "Sound Productions",
			Status:    models.StatusApproved,
		},
		{
			ID:        4,
			Title:     "Yoga Retreat",
			Start:     date(2025, 4, 25, 8, 0),
			End:       date(2025, 4, 25, 12, 0),
			Details:   "Yoga and mindfulness sessions.",
			Location:  "Wellness Center",
			Organizer: "Mindful Living",
			Status:    models.StatusRejected,
		},
		{
			ID:        5,
			Title:     "Career Fair",
			Start:     date(2025, 4, 10, 9, 0),
			End:       date(2025, 4, 10, 16, 0),
			Details:   "Connect with top employers in the region.",
			Location:  "University Hall",
			Organizer: "Career Services",
			Status:    models.StatusApproved,
		},
		{
			ID:        6,
			Title:     "Food Festival",
			Start:     date(2025, 4, 28, 11, 0),
			End:       date(2025, 4, 28, 20, 0),
			Details:   "Culinary delights from around the world.",
			Location:  "Main Street",
			Organizer: "Food Network Association",
			Status:    models.StatusPending,
		},
	}
}

// Approved returns only the events that belong on the calendar grid.
// Non-approved requests stay in the side list.
func Approved(events []models.CalendarEvent) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(events))
	for _, e := range events {
		if e.Status == models.StatusApproved {
			out = append(out, e)
		}
	}
	return out
}
