package models

import "time"

// EventStatus is the review status of a calendar event request.
type EventStatus string

const (
	StatusApproved EventStatus = "approved"
	StatusPending  EventStatus = "pending"
	StatusRejected EventStatus = "rejected"
)

// CalendarEvent is a read-only display entity for the dashboard. Only
// approved events appear on the calendar grid; the side list shows all.
type CalendarEvent struct {
	ID        int         `json:"id"`
	Title     string      `json:"title"`
	Start     time.Time   `json:"start"`
	End       time.Time   `json:"end"`
	Details   string      `json:"details"`
	Location  string      `json:"location"`
	Organizer string      `json:"organizer"`
	Status    EventStatus `json:"status"`
}
