// Package daemon manages the ppoom daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all daemon configuration.
type Config struct {
	API           APIConfig           `toml:"api"`
	Tracker       TrackerConfig       `toml:"tracker"`
	Estimator     EstimatorConfig     `toml:"estimator"`
	Notifications NotificationsConfig `toml:"notifications"`
	Telemetry     TelemetryConfig     `toml:"telemetry"`
	Logging       LoggingConfig       `toml:"logging"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// TrackerConfig controls the fatigue session.
type TrackerConfig struct {
	Baseline int `toml:"baseline"`
}

// EstimatorConfig controls the sedentary and sleep estimators.
type EstimatorConfig struct {
	Enabled            bool   `toml:"enabled"`
	SedentaryThreshold string `toml:"sedentary_threshold"`
}

// NotificationsConfig controls dispatch policy.
type NotificationsConfig struct {
	Enabled    bool   `toml:"enabled"`
	QuietStart string `toml:"quiet_start"`
	QuietEnd   string `toml:"quiet_end"`
}

// TelemetryConfig controls metrics exposure.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	homeDir := ppoomHome()
	return Config{
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 7979,
		},
		Tracker: TrackerConfig{
			Baseline: 50,
		},
		Estimator: EstimatorConfig{
			Enabled:            true,
			SedentaryThreshold: "90m",
		},
		Notifications: NotificationsConfig{
			Enabled:    true,
			QuietStart: "22:00",
			QuietEnd:   "08:00",
		},
		Telemetry: TelemetryConfig{
			Prometheus: false,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, "ppoom.log"),
		},
	}
}

// LoadConfig reads config from ~/.ppoom/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(ppoomHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // no config file yet, use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Tracker.Baseline < 0 || cfg.Tracker.Baseline > 100 {
		cfg.Tracker.Baseline = 50
	}

	return cfg, nil
}

// SaveConfig writes the config to ~/.ppoom/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(ppoomHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// Threshold parses the configured sedentary threshold, defaulting to
// 90 minutes when unset or malformed.
func (c EstimatorConfig) Threshold() time.Duration {
	d, err := time.ParseDuration(c.SedentaryThreshold)
	if err != nil || d <= 0 {
		return 90 * time.Minute
	}
	return d
}

// ppoomHome returns the ppoom data directory.
func ppoomHome() string {
	if env := os.Getenv("PPOOM_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".ppoom")
}
