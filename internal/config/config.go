package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration, stored as YAML.
type Config struct {
	// DataDir holds the catalog, reminder and session files.
	DataDir string `yaml:"data_dir"`

	// WeekStart is "sunday" or "monday".
	WeekStart string `yaml:"week_start"`

	DateFormat string `yaml:"date_format"`
	TimeFormat string `yaml:"time_format"`

	// Refresh is how often the dashboard reloads the catalog, as a
	// duration string. Empty disables auto-refresh.
	Refresh string `yaml:"refresh"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// AuthSecret signs session tokens. Regenerating it invalidates any
	// stored session.
	AuthSecret string `yaml:"auth_secret"`
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".local", "share", "eventide")

	return &Config{
		DataDir:    dataDir,
		WeekStart:  "sunday",
		DateFormat: "Jan 2, 2006",
		TimeFormat: "15:04",
		Refresh:    "30s",
		LogLevel:   "info",
		LogFile:    filepath.Join(dataDir, "eventide.log"),
		AuthSecret: "eventide-dev-secret",
	}
}

// Load reads the first config file found, creating one with defaults on
// first run. A .env file and EVENTIDE_* variables override file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path, found := findConfig()
	if found {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	} else if path != "" {
		if err := cfg.Save(path); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// findConfig returns the first existing candidate path, or the preferred
// location for a new file when none exists yet.
func findConfig() (string, bool) {
	var candidates []string
	if v := os.Getenv("EVENTIDE_CONFIG"); v != "" {
		candidates = append(candidates, v)
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		candidates = append(candidates, filepath.Join(v, "eventide", "config.yaml"))
	}
	if v := os.Getenv("HOME"); v != "" {
		candidates = append(candidates, filepath.Join(v, ".config", "eventide", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0], false
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Save writes the config with 0600 permissions (it carries the signing
// secret).
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("EVENTIDE_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("EVENTIDE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("EVENTIDE_AUTH_SECRET"); v != "" {
		c.AuthSecret = v
	}
}

// WeekStartDay maps the week_start setting onto a weekday; anything but
// "monday" means Sunday.
func (c *Config) WeekStartDay() time.Weekday {
	if c.WeekStart == "monday" {
		return time.Monday
	}
	return time.Sunday
}

// RefreshRate parses the refresh setting; zero disables auto-refresh.
func (c *Config) RefreshRate() time.Duration {
	d, err := time.ParseDuration(c.Refresh)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

func (c *Config) CatalogPath() string  { return filepath.Join(c.DataDir, "events.json") }
func (c *Config) ReminderPath() string { return filepath.Join(c.DataDir, "reminders.json") }
func (c *Config) SessionPath() string  { return filepath.Join(c.DataDir, "session.json") }
