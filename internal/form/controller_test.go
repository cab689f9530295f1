package form

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-portal/internal/models"
	"nexus-portal/internal/storage"
)

func newTestController(store storage.Store) *Controller {
	c := NewController(store, zerolog.Nop())
	c.now = func() time.Time {
		return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return c
}

func TestSetFieldUpdatesOnlyNamedField(t *testing.T) {
	c := newTestController(storage.NewMemStore())
	before := c.Record()

	c.SetField(FieldEventName, "Spring Gala")

	after := c.Record()
	assert.Equal(t, "Spring Gala", after.EventName)

	// Nothing else may change.
	after.EventName = before.EventName
	assert.Equal(t, before, after)
}

func TestSetFieldUnknownFieldIsNoOp(t *testing.T) {
	c := newTestController(storage.NewMemStore())
	before := c.Record()

	c.SetField("nope", "value")
	c.SetField("targetAudience", "value")

	assert.Equal(t, before, c.Record())
}

func TestSetFieldMistypedValueIsNoOp(t *testing.T) {
	c := newTestController(storage.NewMemStore())
	before := c.Record()

	c.SetField(FieldEventName, 42)
	c.SetField(FieldPolicyAgreement, "yes")

	assert.Equal(t, before, c.Record())
}

func TestSetFieldBooleans(t *testing.T) {
	c := newTestController(storage.NewMemStore())

	c.SetField(FieldPolicyAgreement, true)
	c.SetField(FieldDignitaries, true)

	r := c.Record()
	assert.True(t, r.PolicyAgreement)
	assert.True(t, r.Dignitaries)
	assert.False(t, r.MoneyExchange)
}

func TestSetAudienceFlagRecomputesSelection(t *testing.T) {
	c := newTestController(storage.NewMemStore())
	assert.False(t, c.AudienceSelected())

	c.SetAudienceFlag(models.AudienceStudents, true)
	assert.True(t, c.AudienceSelected())
	assert.True(t, c.Record().TargetAudience[models.AudienceStudents])

	// The flag must reflect the record after the update, even when the
	// same toggle flips straight back.
	c.SetAudienceFlag(models.AudienceStudents, false)
	assert.False(t, c.AudienceSelected())
}

func TestToggleAudienceTwiceNetsOut(t *testing.T) {
	c := newTestController(storage.NewMemStore())

	c.ToggleAudience(models.AudienceStudents)
	assert.True(t, c.Record().TargetAudience[models.AudienceStudents])
	assert.True(t, c.AudienceSelected())

	// The second toggle reads the state left by the first, not a stale
	// snapshot, so a repeated toggle nets out.
	c.ToggleAudience(models.AudienceStudents)
	assert.False(t, c.Record().TargetAudience[models.AudienceStudents])
	assert.False(t, c.AudienceSelected())
}

func TestSetAudienceFlagUnknownCategoryIsNoOp(t *testing.T) {
	c := newTestController(storage.NewMemStore())

	c.SetAudienceFlag(models.AudienceCategory("aliens"), true)

	assert.False(t, c.AudienceSelected())
	assert.Len(t, c.Record().TargetAudience, len(models.AudienceCategories()))
}

func TestLoadDraftSeedsEventDate(t *testing.T) {
	c := newTestController(storage.NewMemStore())

	resumed := c.LoadDraft()

	assert.False(t, resumed)
	assert.Equal(t, "2025-03-25", c.Record().EventDate)
}

func TestLoadDraftResumesSavedDraft(t *testing.T) {
	store := storage.NewMemStore()

	draft := models.NewEventRequest()
	draft.EventName = "Poetry Night"
	draft.EventDate = "2025-04-01"
	draft.TargetAudience[models.AudienceAlumni] = true
	require.NoError(t, storage.PutJSON(store, storage.KeyDraftRequest, draft))

	c := newTestController(store)
	resumed := c.LoadDraft()

	assert.True(t, resumed)
	assert.Equal(t, "2025-04-01", c.Record().EventDate)
	assert.Equal(t, "Poetry Night", c.Record().EventName)
	assert.True(t, c.AudienceSelected())
}

func TestLoadDraftFailsOpenOnCorruptValue(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Put(storage.KeyDraftRequest, []byte("{not json")))

	c := newTestController(store)
	resumed := c.LoadDraft()

	assert.False(t, resumed)
	assert.Equal(t, "2025-03-25", c.Record().EventDate)
}

func TestResetClearsRecord(t *testing.T) {
	c := newTestController(storage.NewMemStore())
	c.SetField(FieldEventName, "Spring Gala")
	c.SetAudienceFlag(models.AudienceStaff, true)

	c.Reset()

	assert.Equal(t, models.NewEventRequest(), c.Record())
	assert.False(t, c.AudienceSelected())
}
