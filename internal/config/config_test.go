package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.WeekStart != "sunday" {
		t.Errorf("WeekStart = %q", cfg.WeekStart)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.RefreshRate() != 30*time.Second {
		t.Errorf("RefreshRate = %v", cfg.RefreshRate())
	}
	if cfg.CatalogPath() != filepath.Join(cfg.DataDir, "events.json") {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte("data_dir: /tmp/eventide-test\nweek_start: monday\nrefresh: 5s\nlog_level: debug\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("EVENTIDE_CONFIG", path)
	t.Setenv("EVENTIDE_DATA_DIR", "")
	t.Setenv("EVENTIDE_LOG_LEVEL", "")
	t.Setenv("EVENTIDE_AUTH_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != "/tmp/eventide-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.WeekStartDay() != time.Monday {
		t.Errorf("WeekStartDay = %v", cfg.WeekStartDay())
	}
	if cfg.RefreshRate() != 5*time.Second {
		t.Errorf("RefreshRate = %v", cfg.RefreshRate())
	}
	// Unset keys keep their defaults.
	if cfg.TimeFormat != "15:04" {
		t.Errorf("TimeFormat = %q", cfg.TimeFormat)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("EVENTIDE_CONFIG", path)
	t.Setenv("EVENTIDE_DATA_DIR", "/tmp/override")
	t.Setenv("EVENTIDE_LOG_LEVEL", "error")
	t.Setenv("EVENTIDE_AUTH_SECRET", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DataDir != "/tmp/override" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.AuthSecret != "from-env" {
		t.Errorf("AuthSecret = %q", cfg.AuthSecret)
	}
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eventide", "config.yaml")

	t.Setenv("EVENTIDE_CONFIG", path)
	t.Setenv("EVENTIDE_DATA_DIR", "")
	t.Setenv("EVENTIDE_LOG_LEVEL", "")
	t.Setenv("EVENTIDE_AUTH_SECRET", "")

	if _, err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestRefreshRateInvalid(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Refresh = "garbage"
	if got := cfg.RefreshRate(); got != 0 {
		t.Errorf("invalid refresh = %v, want 0", got)
	}

	cfg.Refresh = ""
	if got := cfg.RefreshRate(); got != 0 {
		t.Errorf("empty refresh = %v, want 0", got)
	}

	cfg.Refresh = "-5s"
	if got := cfg.RefreshRate(); got != 0 {
		t.Errorf("negative refresh = %v, want 0", got)
	}
}
