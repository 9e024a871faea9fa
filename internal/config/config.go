// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - New() builds a Config holding the defaults.
//   - Load(ctx) layers a YAML file and PULSS_* environment variables on top.
//   - Validation failures wrap ErrInvalidConfig.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/okian/pulss/internal/adapters/upstream"
)

// DefaultAPIBaseURL is the Pulss API host used when none is configured.
const DefaultAPIBaseURL = upstream.DefaultBaseURL

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogJSON switches log output to JSON lines.
	LogJSON bool `koanf:"log_json"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// APIBaseURL is the Pulss API every service calls.
	APIBaseURL string `koanf:"api_base_url"`

	// RequestTimeoutMS bounds each upstream call. Zero means unbounded.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// FallbackEnabled lets reads degrade to local data when the API is down.
	FallbackEnabled bool `koanf:"fallback_enabled"`

	// NewsDefaultLimit caps GET /api/sns-news when the caller sends no limit.
	NewsDefaultLimit int `koanf:"news_default_limit"`

	// ShutdownTimeoutMS bounds graceful HTTP shutdown.
	ShutdownTimeoutMS int `koanf:"shutdown_timeout_ms"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		APIBaseURL:        DefaultAPIBaseURL,
		RequestTimeoutMS:  0,
		FallbackEnabled:   true,
		NewsDefaultLimit:  30,
		ShutdownTimeoutMS: 10_000,
	}
}

// RequestTimeout returns RequestTimeoutMS as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// ShutdownTimeout returns ShutdownTimeoutMS as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api_base_url %q must be an absolute http(s) url", ErrInvalidConfig, c.APIBaseURL)
	}
	if c.RequestTimeoutMS < 0 {
		return fmt.Errorf("%w: request_timeout_ms must not be negative", ErrInvalidConfig)
	}
	if c.NewsDefaultLimit <= 0 {
		return fmt.Errorf("%w: news_default_limit must be positive", ErrInvalidConfig)
	}
	if c.ShutdownTimeoutMS <= 0 {
		return fmt.Errorf("%w: shutdown_timeout_ms must be positive", ErrInvalidConfig)
	}
	return nil
}
