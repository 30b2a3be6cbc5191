// Package config loads and layers mega-go configuration: built-in defaults,
// a TOML config file, and environment variable overrides, in that order.
// The password never lives in the config file; it arrives via environment
// variable or interactive prompt only.
package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Config is the on-disk configuration shape.
type Config struct {
	// Email is the account identifier used for login.
	Email string `toml:"email"`

	// APIURL overrides the command endpoint. Empty means the production
	// endpoint.
	APIURL string `toml:"api_url"`

	// TimeoutSeconds bounds each API round trip.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default values for a config file with missing keys, and for the
// zero-config first run.
const (
	defaultTimeoutSeconds = 15
	defaultLogLevel       = "info"
)

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		TimeoutSeconds: defaultTimeoutSeconds,
		LogLevel:       defaultLogLevel,
	}
}

// validLogLevels is the accepted log_level set.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks a loaded Config for values that would misbehave later.
// Strictness here beats a confusing failure at request time.
func Validate(cfg *Config) error {
	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", cfg.TimeoutSeconds)
	}

	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	if cfg.APIURL != "" {
		u, err := url.Parse(cfg.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("api_url %q is not an absolute URL", cfg.APIURL)
		}
	}

	if cfg.Email != "" && !strings.Contains(cfg.Email, "@") {
		return fmt.Errorf("email %q does not look like an email address", cfg.Email)
	}

	return nil
}
