// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, duration parsing, and validation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
backend:
  base_url: "https://market.example.com"
  timeout: "30s"

session:
  token_path: "/tmp/motorvia/token"

snapshot:
  enabled: true
  path: "./snapshot.db"

logging:
  level: "debug"
  format: "json"

screens:
  page_sizes:
    vehicles: 8
    users: 10
    lostfound: 6
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.BaseURL != "https://market.example.com" {
		t.Errorf("BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Backend.Timeout)
	}
	if !cfg.Snapshot.Enabled {
		t.Error("Snapshot.Enabled = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if got := cfg.Screens.PageSize("users"); got != 10 {
		t.Errorf("PageSize(users) = %d, want 10", got)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_BACKEND_URL", "https://staging.example.com")

	configPath := writeConfig(t, `
backend:
  base_url: "${TEST_BACKEND_URL}"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.BaseURL != "https://staging.example.com" {
		t.Errorf("BaseURL = %q, want expanded env value", cfg.Backend.BaseURL)
	}
}

func TestLoad_DefaultTimeout(t *testing.T) {
	configPath := writeConfig(t, `
backend:
  base_url: "https://market.example.com"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.Timeout != defaultTimeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Backend.Timeout, defaultTimeout)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	configPath := writeConfig(t, `
backend:
  base_url: "https://market.example.com"
  timeout: "not-a-duration"
`)

	_, err := Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "timeout") {
		t.Errorf("Load() error = %v, want timeout parse error", err)
	}
}

func TestLoad_MissingBaseURL(t *testing.T) {
	configPath := writeConfig(t, `
logging:
  level: "info"
`)

	_, err := Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Errorf("Load() error = %v, want base_url validation error", err)
	}
}

func TestLoad_RelativeBaseURLRejected(t *testing.T) {
	configPath := writeConfig(t, `
backend:
  base_url: "market.example.com/api"
`)

	_, err := Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "absolute") {
		t.Errorf("Load() error = %v, want absolute-URL validation error", err)
	}
}

func TestLoad_SnapshotEnabledWithoutPath(t *testing.T) {
	configPath := writeConfig(t, `
backend:
  base_url: "https://market.example.com"
snapshot:
  enabled: true
`)

	_, err := Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "snapshot.path") {
		t.Errorf("Load() error = %v, want snapshot.path validation error", err)
	}
}

func TestLoad_NonPositivePageSize(t *testing.T) {
	configPath := writeConfig(t, `
backend:
  base_url: "https://market.example.com"
screens:
  page_sizes:
    vehicles: 0
`)

	_, err := Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "page_sizes") {
		t.Errorf("Load() error = %v, want page-size validation error", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestScreensConfig_PageSizeDefaults(t *testing.T) {
	var s ScreensConfig

	if got := s.PageSize("lostfound"); got != 6 {
		t.Errorf("PageSize(lostfound) = %d, want 6", got)
	}
	if got := s.PageSize("unknown-screen"); got != 10 {
		t.Errorf("PageSize(unknown-screen) = %d, want 10", got)
	}
}
