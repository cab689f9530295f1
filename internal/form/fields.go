// Package form holds the in-progress event request and decides whether it
// is ready to submit.
package form

// Field names as the form declares them. Validation reports failures in
// this order, so "first invalid field" is deterministic.
const (
	FieldEventName            = "eventName"
	FieldEventType            = "eventType"
	FieldEventDate            = "eventDate"
	FieldStartDate            = "startDate"
	FieldSetupTime            = "setupTime"
	FieldStartTime            = "startTime"
	FieldEndTime              = "endTime"
	FieldPresenterName        = "presenterName"
	FieldPresenterCell        = "presenterCell"
	FieldPresenterEmail       = "presenterEmail"
	FieldTablesChairsNeeded   = "tablesChairsNeeded"
	FieldEventBuilding        = "eventBuilding"
	FieldEquipmentNeeded      = "equipmentNeeded"
	FieldNumberOfAttendees    = "numberOfAttendees"
	FieldEventDescription     = "eventDescription"
	FieldAlternativeLocation1 = "alternativeLocation1"
	FieldAlternativeLocation2 = "alternativeLocation2"
	FieldAlternativeLocation3 = "alternativeLocation3"
	FieldAlternativeLocation4 = "alternativeLocation4"
	FieldPublicCalendar       = "publicCalendar"

	FieldHandicapAccommodations = "handicapAccommodations"
	FieldParkingArrangements    = "parkingArrangements"
	FieldDignitaries            = "dignitaries"
	FieldMoneyExchange          = "moneyExchange"
	FieldPolicyAgreement        = "policyAgreement"

	// FieldAudience is the synthetic field reported when only the
	// "at least one target audience" rule fails. It is not settable
	// through SetField; audience flags go through SetAudienceFlag.
	FieldAudience = "audience"
)

// MinLeadDays is how many days in advance an event must be requested.
const MinLeadDays = 10

// DateLayout is the calendar-date string format used by the date fields.
const DateLayout = "2006-01-02"
