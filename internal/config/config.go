// ABOUTME: Configuration loading and parsing for motorvia-console
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Default page sizes per screen, applied when the config omits one.
var defaultPageSizes = map[string]int{
	"vehicles":     8,
	"users":        10,
	"transactions": 5,
	"lostfound":    6,
	"wishlist":     6,
	"sales":        5,
}

// defaultTimeout bounds every backend call when the config sets none.
const defaultTimeout = 15 * time.Second

// Config represents the complete motorvia-console configuration
type Config struct {
	Backend  BackendConfig  `yaml:"backend"`
	Session  SessionConfig  `yaml:"session"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
	Screens  ScreensConfig  `yaml:"screens"`
}

// BackendConfig holds the REST backend origin and request timeout
type BackendConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	TimeoutRaw string `yaml:"timeout"`
}

// SessionConfig holds the token file location
type SessionConfig struct {
	TokenPath string `yaml:"token_path"`
}

// SnapshotConfig holds the local last-known-good store configuration
type SnapshotConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ScreensConfig holds per-screen page sizes
type ScreensConfig struct {
	PageSizes map[string]int `yaml:"page_sizes"`
}

// PageSize returns the configured page size for a screen, falling back to
// the screen's default.
func (s *ScreensConfig) PageSize(screen string) int {
	if n, ok := s.PageSizes[screen]; ok && n > 0 {
		return n
	}
	if n, ok := defaultPageSizes[screen]; ok {
		return n
	}
	return 10
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	// Match ${VAR_NAME} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR_NAME}
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}

	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("backend.base_url must be an absolute URL, got %q", c.Backend.BaseURL)
	}

	if c.Snapshot.Enabled && c.Snapshot.Path == "" {
		return fmt.Errorf("snapshot.path is required when snapshot is enabled")
	}

	for screen, n := range c.Screens.PageSizes {
		if n < 1 {
			return fmt.Errorf("screens.page_sizes.%s must be positive, got %d", screen, n)
		}
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	if cfg.Backend.TimeoutRaw == "" {
		cfg.Backend.Timeout = defaultTimeout
		return nil
	}

	d, err := time.ParseDuration(cfg.Backend.TimeoutRaw)
	if err != nil {
		return fmt.Errorf("parsing backend timeout %q: %w", cfg.Backend.TimeoutRaw, err)
	}
	cfg.Backend.Timeout = d

	return nil
}
