package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.SnapshotPath != "news_data.json" {
		t.Errorf("SnapshotPath = %q", cfg.SnapshotPath)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("rate limit should default to enabled")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("addr: \":9090\"\nsite_url: \"https://file.example.com\"\nrate_limit:\n  enabled: false\n  rps: 5\n  burst: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SITE_URL", "https://env.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// File overrides defaults.
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want file value", cfg.Addr)
	}
	if cfg.RateLimit.Enabled {
		t.Error("rate limit should be disabled by file")
	}
	if cfg.RateLimit.RPS != 5 {
		t.Errorf("RPS = %v, want file value", cfg.RateLimit.RPS)
	}

	// Env overrides file.
	if cfg.SiteURL != "https://env.example.com" {
		t.Errorf("SiteURL = %q, want env value", cfg.SiteURL)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "hello")
	t.Setenv("X_INT", "42")
	t.Setenv("X_INT_BAD", "forty-two")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_BOOL_BAD", "yes")
	t.Setenv("X_DUR", "90s")
	t.Setenv("X_FLOAT", "2.5")

	if got := GetEnvString("X_STR", "d"); got != "hello" {
		t.Errorf("GetEnvString = %q", got)
	}
	if got := GetEnvString("X_UNSET", "d"); got != "d" {
		t.Errorf("GetEnvString default = %q", got)
	}
	if got := GetEnvInt("X_INT", 1); got != 42 {
		t.Errorf("GetEnvInt = %d", got)
	}
	if got := GetEnvInt("X_INT_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt bad value = %d, want default", got)
	}
	if got := GetEnvBool("X_BOOL", false); !got {
		t.Error("GetEnvBool = false")
	}
	if got := GetEnvBool("X_BOOL_BAD", false); got {
		t.Error("GetEnvBool bad value should fall back to default")
	}
	if got := GetEnvDuration("X_DUR", time.Second); got != 90*time.Second {
		t.Errorf("GetEnvDuration = %v", got)
	}
	if got := GetEnvFloat("X_FLOAT", 1); got != 2.5 {
		t.Errorf("GetEnvFloat = %v", got)
	}
}
