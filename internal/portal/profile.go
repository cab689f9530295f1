package portal

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"nexus-portal/internal/models"
	"nexus-portal/internal/storage"
)

// ProfileManager loads and saves the organization profile. The profile is
// independent of event requests; it only shares the storage mechanism.
type ProfileManager struct {
	store storage.Store
	log   zerolog.Logger
}

// NewProfileManager creates a profile manager on top of the given store.
func NewProfileManager(store storage.Store, logger zerolog.Logger) *ProfileManager {
	return &ProfileManager{
		store: store,
		log:   logger.With().Str("component", "profile").Logger(),
	}
}

// Load returns the stored profile. A missing or unreadable record loads
// as an empty profile.
func (m *ProfileManager) Load() models.OrganizationProfile {
	var p models.OrganizationProfile
	storage.GetJSON(m.store, storage.KeyOrganization, &p)
	return p
}

// Save replaces the stored profile with p.
func (m *ProfileManager) Save(p models.OrganizationProfile) error {
	if err := storage.PutJSON(m.store, storage.KeyOrganization, p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	m.log.Info().Str("org", p.OrgName).Msg("profile saved")
	return nil
}

// AttachPicture reads an image file and embeds it in the profile as a
// base64 data URL, the same representation the stored record has always
// used. The profile is not persisted until Save is called.
func (m *ProfileManager) AttachPicture(p *models.OrganizationProfile, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read picture: %w", err)
	}
	mime := http.DetectContentType(data)
	p.ProfilePicURL = fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	return nil
}
