package models

// AudienceCategory identifies one of the fixed target-audience groups an
// event can be aimed at.
type AudienceCategory string

const (
	AudienceStudents                AudienceCategory = "students"
	AudienceOrganizationMembersOnly AudienceCategory = "organizationMembersOnly"
	AudienceFaculty                 AudienceCategory = "faculty"
	AudienceStaff                   AudienceCategory = "staff"
	AudienceAlumni                  AudienceCategory = "alumni"
	AudienceCommunity               AudienceCategory = "community"
	AudienceBoardOfTrustees         AudienceCategory = "boardOfTrustees"
)

// AudienceCategories returns every category in form-declaration order.
func AudienceCategories() []AudienceCategory {
	return []AudienceCategory{
		AudienceStudents,
		AudienceOrganizationMembersOnly,
		AudienceFaculty,
		AudienceStaff,
		AudienceAlumni,
		AudienceCommunity,
		AudienceBoardOfTrustees,
	}
}

// AudienceMap maps each audience category to its selection state.
type AudienceMap map[AudienceCategory]bool

// NewAudienceMap returns a map with every category present and unselected.
func NewAudienceMap() AudienceMap {
	m := make(AudienceMap, len(AudienceCategories()))
	for _, c := range AudienceCategories() {
		m[c] = false
	}
	return m
}

// AnySelected reports whether at least one category is selected.
func (m AudienceMap) AnySelected() bool {
	for _, on := range m {
		if on {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the map.
func (m AudienceMap) Clone() AudienceMap {
	out := make(AudienceMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// EventRequest is the event-space request form record. The json tags are
// fixed: previously saved drafts and submissions must keep loading.
type EventRequest struct {
	EventName string `json:"eventName"`
	EventType string `json:"eventType"`

	// Dates are calendar-date strings (YYYY-MM-DD), times are HH:MM;
	// both are kept as entered so a draft round-trips byte for byte.
	EventDate string `json:"eventDate"`
	StartDate string `json:"startDate"`
	SetupTime string `json:"setupTime"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	PresenterName  string `json:"presenterName"`
	PresenterCell  string `json:"presenterCell"`
	PresenterEmail string `json:"presenterEmail"`

	TablesChairsNeeded string `json:"tablesChairsNeeded"`
	EventBuilding      string `json:"eventBuilding"`
	EquipmentNeeded    string `json:"equipmentNeeded"`
	NumberOfAttendees  string `json:"numberOfAttendees"`
	EventDescription   string `json:"eventDescription"`

	AlternativeLocation1 string `json:"alternativeLocation1"`
	AlternativeLocation2 string `json:"alternativeLocation2"`
	AlternativeLocation3 string `json:"alternativeLocation3"`
	AlternativeLocation4 string `json:"alternativeLocation4"`

	PublicCalendar string `json:"publicCalendar"`

	TargetAudience AudienceMap `json:"targetAudience"`

	HandicapAccommodations bool `json:"handicapAccommodations"`
	ParkingArrangements    bool `json:"parkingArrangements"`
	Dignitaries            bool `json:"dignitaries"`
	MoneyExchange          bool `json:"moneyExchange"`

	PolicyAgreement bool `json:"policyAgreement"`
}

// NewEventRequest returns an empty record with every audience category
// present and unselected.
func NewEventRequest() EventRequest {
	return EventRequest{TargetAudience: NewAudienceMap()}
}

// Clone returns a copy that shares no state with the receiver.
func (r EventRequest) Clone() EventRequest {
	out := r
	out.TargetAudience = r.TargetAudience.Clone()
	return out
}

// AlternativeLocations returns the four alternative-location fields in order,
// empty entries included.
func (r EventRequest) AlternativeLocations() []string {
	return []string{
		r.AlternativeLocation1,
		r.AlternativeLocation2,
		r.AlternativeLocation3,
		r.AlternativeLocation4,
	}
}

// EventTypeOptions lists the event types the form offers.
func EventTypeOptions() []string {
	return []string{
		"Banquet",
		"Concert",
		"Performance",
		"Exhibit/Fair",
		"Fundraiser",
		"Lecture",
		"Meeting",
		"Play",
		"Reception",
		"Seminar",
		"Social Event",
		"Sports Event",
		"Training",
		"Wedding",
		"Other",
	}
}
