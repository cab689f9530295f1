package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the portal configuration.
type Config struct {
	// DataDir is where the portal keeps its persisted state.
	DataDir string `yaml:"data_dir"`

	// Storage selects the persistence backend: "file" or "sqlite".
	Storage string `yaml:"storage"`

	// CalendarICS optionally points at an iCalendar file that replaces
	// the built-in dashboard fixture.
	CalendarICS string `yaml:"calendar_ics"`

	// PortalName is shown in the CLI banner.
	PortalName string `yaml:"portal_name"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		DataDir:    "data",
		Storage:    "file",
		PortalName: "Nexus",
		LogLevel:   "info",
	}
}

// Normalize fills missing values with defaults so partially filled config
// files still behave.
func (c *Config) Normalize() {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	switch c.Storage {
	case "file", "sqlite":
	default:
		c.Storage = "file"
	}
	if c.PortalName == "" {
		c.PortalName = "Nexus"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// applyEnv lets environment variables override file values.
func (c *Config) applyEnv() {
	c.DataDir = getEnv("PORTAL_DATA_DIR", c.DataDir)
	c.Storage = getEnv("PORTAL_STORAGE", c.Storage)
	c.CalendarICS = getEnv("PORTAL_CALENDAR_ICS", c.CalendarICS)
	c.LogLevel = getEnv("PORTAL_LOG_LEVEL", c.LogLevel)
}

// Load reads the YAML config at path. On first run the default config is
// written there; environment variables override whatever was loaded.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	cfg.applyEnv()

	return &cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
