package portal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-portal/internal/models"
	"nexus-portal/internal/storage"
)

func TestProfileSaveLoadRoundTrip(t *testing.T) {
	m := NewProfileManager(storage.NewMemStore(), zerolog.Nop())

	p := models.OrganizationProfile{
		OrgName:              "Student Government",
		OrgEmail:             "sga@example.edu",
		EventCoordinatorName: "Riley Park",
		OrgDescription:       "Represents the student body.",
	}
	require.NoError(t, m.Save(p))

	assert.Equal(t, p, m.Load())
}

func TestProfileLoadFailsOpen(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Put(storage.KeyOrganization, []byte("corrupt")))

	m := NewProfileManager(store, zerolog.Nop())

	assert.Equal(t, models.OrganizationProfile{}, m.Load())
}

func TestProfileSaveFullyReplaces(t *testing.T) {
	m := NewProfileManager(storage.NewMemStore(), zerolog.Nop())

	require.NoError(t, m.Save(models.OrganizationProfile{OrgName: "Old", OrgEmail: "old@example.edu"}))
	require.NoError(t, m.Save(models.OrganizationProfile{OrgName: "New"}))

	got := m.Load()
	assert.Equal(t, "New", got.OrgName)
	assert.Empty(t, got.OrgEmail, "no merging with the prior value")
}

func TestAttachPictureEmbedsDataURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	// Minimal PNG header is enough for content-type sniffing.
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nrest"), 0644))

	m := NewProfileManager(storage.NewMemStore(), zerolog.Nop())
	var p models.OrganizationProfile
	require.NoError(t, m.AttachPicture(&p, path))

	assert.True(t, strings.HasPrefix(p.ProfilePicURL, "data:image/png;base64,"), p.ProfilePicURL)
}

func TestAttachPictureMissingFile(t *testing.T) {
	m := NewProfileManager(storage.NewMemStore(), zerolog.Nop())
	var p models.OrganizationProfile

	err := m.AttachPicture(&p, filepath.Join(t.TempDir(), "nope.png"))

	assert.Error(t, err)
	assert.Empty(t, p.ProfilePicURL)
}
