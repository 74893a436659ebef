// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"rent-cost/core/determinism"
	"rent-cost/core/types"
	"rent-cost/internal/errors"
	"rent-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP API configuration
	Server ServerConfig `json:"server"`

	// Compare contains listing comparison configuration
	Compare CompareConfig `json:"compare"`

	// Defaults overrides catalog defaults for slots missing from listing files
	Defaults map[types.Slot]types.FeeItem `json:"defaults,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-slot breakdown
	ShowDetails bool `json:"show_details"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// ReadTimeoutSeconds bounds reading a request
	ReadTimeoutSeconds int `json:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds writing a response
	WriteTimeoutSeconds int `json:"write_timeout_seconds"`

	// MaxBodyBytes caps request bodies
	MaxBodyBytes int64 `json:"max_body_bytes"`
}

// ReadTimeout returns the read timeout as a duration
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// CompareConfig contains comparison settings
type CompareConfig struct {
	// MaxWorkers bounds how many listings are computed at once
	MaxWorkers int `json:"max_workers"`
}

// DefaultPath returns the config file used when --config is not given
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".rent-cost.json")
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   false,
		},
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
			MaxBodyBytes:        1 << 20,
		},
		Compare: CompareConfig{
			MaxWorkers: 4,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config", err).WithContext("path", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("failed to parse config", err).WithContext("path", path)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if c.Compare.MaxWorkers < 1 {
		return errors.Newf(errors.TypeConfig, "compare.max_workers must be at least 1, got %d", c.Compare.MaxWorkers)
	}
	if c.Server.MaxBodyBytes < 1 {
		return errors.Newf(errors.TypeConfig, "server.max_body_bytes must be at least 1, got %d", c.Server.MaxBodyBytes)
	}
	// Zero disables a timeout, as in http.Server.
	if c.Server.ReadTimeoutSeconds < 0 {
		return errors.Newf(errors.TypeConfig, "server.read_timeout_seconds must not be negative, got %d", c.Server.ReadTimeoutSeconds)
	}
	if c.Server.WriteTimeoutSeconds < 0 {
		return errors.Newf(errors.TypeConfig, "server.write_timeout_seconds must not be negative, got %d", c.Server.WriteTimeoutSeconds)
	}
	for _, slot := range determinism.SortedKeys(c.Defaults) {
		if !slot.IsValid() {
			return errors.Newf(errors.TypeConfig, "unknown fee slot %q in defaults", slot).WithField(slot.String())
		}
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
