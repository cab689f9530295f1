package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-portal/internal/models"
)

func TestApprovedFiltersFixture(t *testing.T) {
	approved := Approved(Fixture())

	require.Len(t, approved, 3)
	for _, e := range approved {
		assert.Equal(t, models.StatusApproved, e.Status)
	}

	titles := []string{approved[0].Title, approved[1].Title, approved[2].Title}
	assert.Equal(t, []string{"Tech Conference", "Music Festival", "Career Fair"}, titles)
}

func TestApprovedKeepsConcreteTimes(t *testing.T) {
	for _, e := range Approved(Fixture()) {
		assert.False(t, e.Start.IsZero())
		assert.True(t, e.End.After(e.Start))
	}
}

func TestApprovedEmptyInput(t *testing.T) {
	assert.Empty(t, Approved(nil))
}

const testICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//nexus-portal//test//EN
BEGIN:VEVENT
UID:1@test
DTSTART:20250415T100000Z
DTEND:20250415T150000Z
SUMMARY:Tech Conference
DESCRIPTION:Tech talks and networking event.
LOCATION:Convention Center
ORGANIZER:mailto:tech@example.edu
STATUS:CONFIRMED
END:VEVENT
BEGIN:VEVENT
UID:2@test
DTSTART:20250418T120000Z
DTEND:20250418T180000Z
SUMMARY:Art Exhibition
LOCATION:Downtown Gallery
STATUS:TENTATIVE
END:VEVENT
BEGIN:VEVENT
UID:3@test
DTSTART:20250425T080000Z
DTEND:20250425T120000Z
SUMMARY:Yoga Retreat
STATUS:CANCELLED
END:VEVENT
END:VCALENDAR
`

func TestLoadICS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ics")
	// iCalendar lines end in CRLF.
	body := strings.ReplaceAll(testICS, "\n", "\r\n")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	events, err := LoadICS(path)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "Tech Conference", events[0].Title)
	assert.Equal(t, "Convention Center", events[0].Location)
	assert.Equal(t, "tech@example.edu", events[0].Organizer)
	assert.Equal(t, models.StatusApproved, events[0].Status)

	assert.Equal(t, models.StatusPending, events[1].Status)
	assert.Equal(t, models.StatusRejected, events[2].Status)

	assert.Len(t, Approved(events), 1)
}

func TestLoadICSMissingFile(t *testing.T) {
	_, err := LoadICS(filepath.Join(t.TempDir(), "missing.ics"))
	assert.Error(t, err)
}
