package form

import (
	"time"

	"github.com/rs/zerolog"

	"nexus-portal/internal/models"
	"nexus-portal/internal/storage"
)

// Controller owns the in-progress event request record. Field updates go
// through SetField and SetAudienceFlag so an update either fully applies
// or is dropped; the record is never left half-written.
type Controller struct {
	record           models.EventRequest
	audienceSelected bool

	store storage.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewController creates a controller with an empty record.
func NewController(store storage.Store, logger zerolog.Logger) *Controller {
	return &Controller{
		record: models.NewEventRequest(),
		store:  store,
		log:    logger.With().Str("component", "form").Logger(),
		now:    time.Now,
	}
}

// Record returns a copy of the current record.
func (c *Controller) Record() models.EventRequest {
	return c.record.Clone()
}

// AudienceSelected reports whether at least one target-audience category
// is currently selected.
func (c *Controller) AudienceSelected() bool {
	return c.audienceSelected
}

// SetField updates exactly one top-level attribute. Unknown field names
// and mistyped values are rejected silently; no other attribute is ever
// touched.
func (c *Controller) SetField(name string, value any) {
	switch name {
	case FieldEventName, FieldEventType, FieldEventDate, FieldStartDate,
		FieldSetupTime, FieldStartTime, FieldEndTime,
		FieldPresenterName, FieldPresenterCell, FieldPresenterEmail,
		FieldTablesChairsNeeded, FieldEventBuilding, FieldEquipmentNeeded,
		FieldNumberOfAttendees, FieldEventDescription,
		FieldAlternativeLocation1, FieldAlternativeLocation2,
		FieldAlternativeLocation3, FieldAlternativeLocation4,
		FieldPublicCalendar:
		s, ok := value.(string)
		if !ok {
			c.log.Debug().Str("field", name).Msg("dropping non-string value")
			return
		}
		c.setString(name, s)
	case FieldHandicapAccommodations, FieldParkingArrangements,
		FieldDignitaries, FieldMoneyExchange, FieldPolicyAgreement:
		b, ok := value.(bool)
		if !ok {
			c.log.Debug().Str("field", name).Msg("dropping non-bool value")
			return
		}
		c.setBool(name, b)
	default:
		c.log.Debug().Str("field", name).Msg("dropping unknown field")
	}
}

func (c *Controller) setString(name, value string) {
	switch name {
	case FieldEventName:
		c.record.EventName = value
	case FieldEventType:
		c.record.EventType = value
	case FieldEventDate:
		c.record.EventDate = value
	case FieldStartDate:
		c.record.StartDate = value
	case FieldSetupTime:
		c.record.SetupTime = value
	case FieldStartTime:
		c.record.StartTime = value
	case FieldEndTime:
		c.record.EndTime = value
	case FieldPresenterName:
		c.record.PresenterName = value
	case FieldPresenterCell:
		c.record.PresenterCell = value
	case FieldPresenterEmail:
		c.record.PresenterEmail = value
	case FieldTablesChairsNeeded:
		c.record.TablesChairsNeeded = value
	case FieldEventBuilding:
		c.record.EventBuilding = value
	case FieldEquipmentNeeded:
		c.record.EquipmentNeeded = value
	case FieldNumberOfAttendees:
		c.record.NumberOfAttendees = value
	case FieldEventDescription:
		c.record.EventDescription = value
	case FieldAlternativeLocation1:
		c.record.AlternativeLocation1 = value
	case FieldAlternativeLocation2:
		c.record.AlternativeLocation2 = value
	case FieldAlternativeLocation3:
		c.record.AlternativeLocation3 = value
	case FieldAlternativeLocation4:
		c.record.AlternativeLocation4 = value
	case FieldPublicCalendar:
		c.record.PublicCalendar = value
	}
}

func (c *Controller) setBool(name string, value bool) {
	switch name {
	case FieldHandicapAccommodations:
		c.record.HandicapAccommodations = value
	case FieldParkingArrangements:
		c.record.ParkingArrangements = value
	case FieldDignitaries:
		c.record.Dignitaries = value
	case FieldMoneyExchange:
		c.record.MoneyExchange = value
	case FieldPolicyAgreement:
		c.record.PolicyAgreement = value
	}
}

// SetAudienceFlag updates one target-audience entry. The "at least one
// selected" flag is recomputed from the record after the update lands, so
// it can never lag behind a rapid sequence of toggles.
func (c *Controller) SetAudienceFlag(category models.AudienceCategory, selected bool) {
	if _, ok := c.record.TargetAudience[category]; !ok {
		c.log.Debug().Str("category", string(category)).Msg("dropping unknown audience category")
		return
	}
	c.record.TargetAudience[category] = selected
	c.audienceSelected = c.record.TargetAudience.AnySelected()
}

// ToggleAudience flips one target-audience entry from its current state,
// so toggling the same category twice is a no-op overall.
func (c *Controller) ToggleAudience(category models.AudienceCategory) {
	c.SetAudienceFlag(category, !c.record.TargetAudience[category])
}

// LoadDraft replaces the whole record with a previously saved draft. When
// no draft exists the record is reset to defaults with the event date
// seeded to the earliest allowed day. Returns whether a draft was resumed.
func (c *Controller) LoadDraft() bool {
	var draft models.EventRequest
	if storage.GetJSON(c.store, storage.KeyDraftRequest, &draft) {
		if draft.TargetAudience == nil {
			draft.TargetAudience = models.NewAudienceMap()
		}
		// Older drafts may miss categories added since they were saved.
		for _, cat := range models.AudienceCategories() {
			if _, ok := draft.TargetAudience[cat]; !ok {
				draft.TargetAudience[cat] = false
			}
		}
		c.record = draft
		c.audienceSelected = c.record.TargetAudience.AnySelected()
		c.log.Info().Msg("resumed saved draft")
		return true
	}

	c.record = models.NewEventRequest()
	c.record.EventDate = c.now().AddDate(0, 0, MinLeadDays).Format(DateLayout)
	c.audienceSelected = false
	return false
}

// Reset discards the in-memory record and returns the controller to an
// empty form.
func (c *Controller) Reset() {
	c.record = models.NewEventRequest()
	c.audienceSelected = false
}
