package portal

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"nexus-portal/internal/form"
	"nexus-portal/internal/models"
)

// notProvided is shown for date fields the submitter left empty.
const notProvided = "Not Provided"

// NumberedLocation is one alternative location with its display position.
type NumberedLocation struct {
	Number   int
	Location string
}

// DisplayModel is the read-only projection of a submitted request that
// the confirmation view renders.
type DisplayModel struct {
	RequestID string

	EventName string
	EventType string
	EventDate string
	StartDate string
	SetupTime string
	StartTime string
	EndTime   string

	PresenterName  string
	PresenterCell  string
	PresenterEmail string

	TablesChairsNeeded string
	EventBuilding      string
	EquipmentNeeded    string
	NumberOfAttendees  string
	EventDescription   string
	PublicCalendar     string

	Audiences            []string
	AlternativeLocations []NumberedLocation

	HandicapAccommodations bool
	ParkingArrangements    bool
	Dignitaries            bool
	MoneyExchange          bool
}

// Present projects a submitted record into its display form. It is pure:
// audiences are filtered to the selected ones and given readable labels,
// alternative locations are compacted and numbered from 1, and dates are
// formatted as full calendar dates.
func Present(r models.EventRequest, requestID string) DisplayModel {
	m := DisplayModel{
		RequestID: requestID,

		EventName: r.EventName,
		EventType: r.EventType,
		EventDate: formatDate(r.EventDate),
		StartDate: formatDate(r.StartDate),
		SetupTime: r.SetupTime,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,

		PresenterName:  r.PresenterName,
		PresenterCell:  r.PresenterCell,
		PresenterEmail: r.PresenterEmail,

		TablesChairsNeeded: r.TablesChairsNeeded,
		EventBuilding:      r.EventBuilding,
		EquipmentNeeded:    r.EquipmentNeeded,
		NumberOfAttendees:  r.NumberOfAttendees,
		EventDescription:   r.EventDescription,
		PublicCalendar:     r.PublicCalendar,

		HandicapAccommodations: r.HandicapAccommodations,
		ParkingArrangements:    r.ParkingArrangements,
		Dignitaries:            r.Dignitaries,
		MoneyExchange:          r.MoneyExchange,
	}

	for _, c := range models.AudienceCategories() {
		if r.TargetAudience[c] {
			m.Audiences = append(m.Audiences, audienceLabel(c))
		}
	}

	for _, loc := range r.AlternativeLocations() {
		if strings.TrimSpace(loc) == "" {
			continue
		}
		m.AlternativeLocations = append(m.AlternativeLocations, NumberedLocation{
			Number:   len(m.AlternativeLocations) + 1,
			Location: loc,
		})
	}

	return m
}

// audienceLabel turns an identifier-style category into a readable label:
// a space goes before each internal capital and the first letter is
// capitalized, so "boardOfTrustees" becomes "Board Of Trustees".
func audienceLabel(c models.AudienceCategory) string {
	var b strings.Builder
	for i, r := range string(c) {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatDate renders a stored calendar date as e.g. "Tuesday, April 1, 2025".
// Absent or unreadable dates fall back to the placeholder.
func formatDate(s string) string {
	if s == "" {
		return notProvided
	}
	t, err := time.Parse(form.DateLayout, s)
	if err != nil {
		return notProvided
	}
	return fmt.Sprintf("%s, %s %d, %d", t.Weekday(), t.Month(), t.Day(), t.Year())
}
