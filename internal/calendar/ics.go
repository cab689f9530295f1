package calendar

import (
	"fmt"
	"os"
	"strings"

	ical "github.com/arran4/golang-ical"

	"nexus-portal/internal/models"
)

// LoadICS reads dashboard events from an iCalendar file. The VEVENT
// STATUS property carries the review state: CONFIRMED is approved,
// TENTATIVE is pending and CANCELLED is rejected. Events without a
// STATUS default to pending.
func LoadICS(path string) ([]models.CalendarEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer f.Close()

	cal, err := ical.ParseCalendar(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar file: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(cal.Events()))
	for i, ve := range cal.Events() {
		start, err := ve.GetStartAt()
		if err != nil {
			continue
		}
		end, err := ve.GetEndAt()
		if err != nil {
			end = start
		}

		e := models.CalendarEvent{
			ID:     i + 1,
			Start:  start,
			End:    end,
			Status: models.StatusPending,
		}
		if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
			e.Title = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
			e.Details = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
			e.Location = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyOrganizer); p != nil {
			e.Organizer = strings.TrimPrefix(p.Value, "mailto:")
		}
		if p := ve.GetProperty(ical.ComponentPropertyStatus); p != nil {
			e.Status = statusFromICS(p.Value)
		}
		events = append(events, e)
	}

	return events, nil
}

func statusFromICS(v string) models.EventStatus {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "CONFIRMED":
		return models.StatusApproved
	case "CANCELLED":
		return models.StatusRejected
	default:
		return models.StatusPending
	}
}
