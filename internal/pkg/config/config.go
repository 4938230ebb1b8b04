package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings. Values come from an optional YAML
// file named by CONFIG_FILE, with environment variables overriding the file.
type Config struct {
	Addr         string        `yaml:"addr"`
	SiteURL      string        `yaml:"site_url"`
	DatabaseURL  string        `yaml:"database_url"`
	SnapshotPath string        `yaml:"snapshot_path"`
	Version      string        `yaml:"version"`

	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig controls the per-IP request limiter.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

// defaults returns the baseline configuration before file and env overrides.
func defaults() Config {
	return Config{
		Addr:            ":8080",
		SiteURL:         "http://localhost:8080",
		SnapshotPath:    "news_data.json",
		Version:         "dev",
		MaxBodyBytes:    1 << 20, // 1 MiB
		ShutdownTimeout: 10 * time.Second,
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file named
// by CONFIG_FILE (if any), then environment variables.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Addr = GetEnvString("ADDR", cfg.Addr)
	cfg.SiteURL = GetEnvString("SITE_URL", cfg.SiteURL)
	cfg.DatabaseURL = GetEnvString("DATABASE_URL", cfg.DatabaseURL)
	cfg.SnapshotPath = GetEnvString("SNAPSHOT_PATH", cfg.SnapshotPath)
	cfg.Version = GetEnvString("VERSION", cfg.Version)
	cfg.MaxBodyBytes = int64(GetEnvInt("MAX_BODY_BYTES", int(cfg.MaxBodyBytes)))
	cfg.ShutdownTimeout = GetEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.RateLimit.Enabled = GetEnvBool("RATELIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.RPS = GetEnvFloat("RATELIMIT_RPS", cfg.RateLimit.RPS)
	cfg.RateLimit.Burst = GetEnvInt("RATELIMIT_BURST", cfg.RateLimit.Burst)

	return cfg, nil
}
