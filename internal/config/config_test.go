package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "file", cfg.Storage)
	assert.Equal(t, "Nexus", cfg.PortalName)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config file should be written")
}

func TestLoadNormalizesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: cassandra\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage, "unknown backend falls back to file")
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("PORTAL_DATA_DIR", "/tmp/elsewhere")
	t.Setenv("PORTAL_STORAGE", "sqlite")

	cfg, err := Load(filepath.Join(t.TempDir(), "portal.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/elsewhere", cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Storage)
}

func TestLoadRejectsEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")

	want := Default()
	want.CalendarICS = "/srv/events.ics"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
