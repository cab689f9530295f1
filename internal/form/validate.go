package form

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"nexus-portal/internal/models"
)

// Problem describes one failed constraint, with the message the form shows
// next to the field.
type Problem struct {
	Field  string
	Reason string
}

// Result is the outcome of validating a record. FirstInvalidField is the
// first field, in form-declaration order, that failed its own constraint;
// it drives the "scroll to first error" behavior.
type Result struct {
	IsValid           bool
	FirstInvalidField string
	Problems          []Problem
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks every constraint the form enforces. now anchors the
// minimum-lead-time rule; ties between failing rules are broken by field
// declaration order, not by which rule is cheapest to check.
func Validate(r models.EventRequest, now time.Time) Result {
	var problems []Problem
	fail := func(field, reason string) {
		problems = append(problems, Problem{Field: field, Reason: reason})
	}

	if strings.TrimSpace(r.EventName) == "" {
		fail(FieldEventName, "Please provide an event name.")
	}
	if strings.TrimSpace(r.EventType) == "" {
		fail(FieldEventType, "Please select an event type.")
	}

	minDate := midnight(now).AddDate(0, 0, MinLeadDays)
	eventDate, eventDateOK := parseDate(r.EventDate)
	switch {
	case !eventDateOK:
		fail(FieldEventDate, "Please provide a valid event date.")
	case eventDate.Before(minDate):
		fail(FieldEventDate, "Events must be scheduled at least 10 days in advance.")
	}

	startDate, startDateOK := parseDate(r.StartDate)
	switch {
	case !startDateOK:
		fail(FieldStartDate, "Please provide a valid start date.")
	case eventDateOK && startDate.Before(eventDate):
		fail(FieldStartDate, "Start date cannot be before the event date.")
	}

	if strings.TrimSpace(r.SetupTime) == "" {
		fail(FieldSetupTime, "Please provide a setup time.")
	}
	if strings.TrimSpace(r.StartTime) == "" {
		fail(FieldStartTime, "Please provide a start time.")
	}
	if strings.TrimSpace(r.EndTime) == "" {
		fail(FieldEndTime, "Please provide an end time.")
	}

	if strings.TrimSpace(r.PresenterName) == "" {
		fail(FieldPresenterName, "Please provide a name.")
	}
	if strings.TrimSpace(r.PresenterCell) == "" {
		fail(FieldPresenterCell, "Please provide a cell phone number.")
	}
	if email := strings.TrimSpace(r.PresenterEmail); email == "" || !emailPattern.MatchString(email) {
		fail(FieldPresenterEmail, "Please provide a valid email address.")
	}

	if r.TablesChairsNeeded == "" {
		fail(FieldTablesChairsNeeded, "Please select an option.")
	}
	if strings.TrimSpace(r.EventBuilding) == "" {
		fail(FieldEventBuilding, "Please provide the event building.")
	}
	if strings.TrimSpace(r.EquipmentNeeded) == "" {
		fail(FieldEquipmentNeeded, `Please specify equipment needed or write "None".`)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(r.NumberOfAttendees)); err != nil || n < 1 {
		fail(FieldNumberOfAttendees, "Please provide a valid number of attendees.")
	}
	if strings.TrimSpace(r.EventDescription) == "" {
		fail(FieldEventDescription, "Please provide an event description.")
	}

	if strings.TrimSpace(r.AlternativeLocation1) == "" {
		fail(FieldAlternativeLocation1, "Please provide a 2nd location option.")
	}
	if strings.TrimSpace(r.AlternativeLocation2) == "" {
		fail(FieldAlternativeLocation2, "Please provide a 3rd location option.")
	}
	if strings.TrimSpace(r.AlternativeLocation3) == "" {
		fail(FieldAlternativeLocation3, "Please provide a 4th location option.")
	}

	if r.PublicCalendar == "" {
		fail(FieldPublicCalendar, "Please select an option.")
	}

	if !r.TargetAudience.AnySelected() {
		fail(FieldAudience, "Please select at least one target audience.")
	}

	if !r.PolicyAgreement {
		fail(FieldPolicyAgreement, "You must agree to the policies to submit this form.")
	}

	res := Result{IsValid: len(problems) == 0, Problems: problems}
	if !res.IsValid {
		res.FirstInvalidField = problems[0].Field
	}
	return res
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
