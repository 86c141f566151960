// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/site-intel/internal/discovery"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Target
	URL string `json:"url,omitempty"` // Website URL to analyze

	// Crawl behavior
	MaxPages   int  `json:"max_pages,omitempty"`   // Maximum pages to crawl, homepage included
	DelayMs    int  `json:"delay_ms,omitempty"`    // Delay between page requests in milliseconds
	TimeoutSec int  `json:"timeout_sec,omitempty"` // Per-request timeout in seconds
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information

	// Output
	OutputPath string `json:"output_path,omitempty"` // Path to write the JSON report to

	// Storage
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	CacheTTLHour int    `json:"cache_ttl_hour,omitempty"` // Crawled-page cache TTL in hours
	SkipCache    bool   `json:"skip_cache,omitempty"`     // Bypass the page cache entirely
}

// Default crawl settings applied when neither the config file nor CLI
// flags provide a value.
const (
	DefaultDelayMs    = 1000
	DefaultTimeoutSec = 15
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxPages < 0 {
		return fmt.Errorf("config error: 'max_pages' must be non-negative")
	}
	if c.MaxPages > discovery.MaxPagesLimit {
		return fmt.Errorf("config error: 'max_pages' must be at most %d", discovery.MaxPagesLimit)
	}
	if c.DelayMs < 0 {
		return fmt.Errorf("config error: 'delay_ms' must be non-negative")
	}
	if c.TimeoutSec < 0 {
		return fmt.Errorf("config error: 'timeout_sec' must be non-negative")
	}
	if c.CacheTTLHour < 0 {
		return fmt.Errorf("config error: 'cache_ttl_hour' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.OutputPath == "" {
		result.OutputPath = defaults.OutputPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero, then fall back to built-in defaults
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.MaxPages == 0 {
		result.MaxPages = discovery.DefaultMaxPages
	}
	if result.DelayMs == 0 {
		result.DelayMs = defaults.DelayMs
	}
	if result.DelayMs == 0 {
		result.DelayMs = DefaultDelayMs
	}
	if result.TimeoutSec == 0 {
		result.TimeoutSec = defaults.TimeoutSec
	}
	if result.TimeoutSec == 0 {
		result.TimeoutSec = DefaultTimeoutSec
	}
	if result.CacheTTLHour == 0 {
		result.CacheTTLHour = defaults.CacheTTLHour
	}

	// Bool fields: cannot distinguish an unset flag from an explicit false,
	// so a true on either side wins
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose
	result.SkipCache = result.SkipCache || defaults.SkipCache

	return result
}

// Delay returns the configured inter-request delay as a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// Timeout returns the configured per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// CacheTTL returns the configured page-cache TTL, or zero when unset so the
// storage layer applies its own default.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHour) * time.Hour
}
