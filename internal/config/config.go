package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration. Display settings
// live here because they persist outside the engine; the engine consumes
// them read-only.
type Config struct {
	// BackendURL is the base URL of the scheduling backend.
	BackendURL string `yaml:"backend_url"`

	// Token is the bearer token for the backend, issued by its OAuth
	// flow. Empty disables authentication headers.
	Token string `yaml:"token,omitempty"`

	// Timezone is the identifier used to display email timestamps.
	// Event times are wall-clock values and never pass through it.
	Timezone string `yaml:"timezone"`

	// Use24h selects 24-hour display formatting.
	Use24h bool `yaml:"use_24h"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// RefreshCron is the watch mode schedule (e.g. "*/5 * * * *").
	RefreshCron string `yaml:"refresh"`

	// MetricsAddr is the bind address of the watch mode metrics server.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the in-memory default configuration.
func Default() Config {
	return Config{
		BackendURL:  "http://localhost:8000",
		Timezone:    "US/Eastern",
		Use24h:      false,
		LogLevel:    "info",
		RefreshCron: "*/5 * * * *",
		MetricsAddr: ":9090",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "dayplan.yaml"
	}
	return filepath.Join(dir, "dayplan", "config.yaml")
}

// Load reads the config file at path, filling unset fields with
// defaults. A missing file yields the defaults without error; a file
// that exists but cannot be parsed is an error.
func Load(path string) (Config, error) {
	conf := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, nil
		}
		return conf, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if conf.BackendURL == "" {
		conf.BackendURL = Default().BackendURL
	}
	if conf.Timezone == "" {
		conf.Timezone = Default().Timezone
	}
	if conf.LogLevel == "" {
		conf.LogLevel = Default().LogLevel
	}

	return conf, nil
}

// Save writes the config to path with restrictive permissions, creating
// parent directories as needed. The token lives in this file, hence 0600.
func Save(path string, conf Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(conf)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
