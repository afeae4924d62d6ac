// ABOUTME: Saved filter presets loaded from TOML under the XDG config dir
// ABOUTME: A preset names a screen plus a query/filter/sort state to re-apply

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Preset is one saved filter state for a screen.
type Preset struct {
	Screen  string            `toml:"screen"`
	Query   string            `toml:"query"`
	Sort    string            `toml:"sort"`
	Filters map[string]string `toml:"filters"`
}

// Presets maps preset names to their saved state.
type Presets struct {
	Presets map[string]Preset `toml:"presets"`
}

// DefaultPresetsPath returns the XDG location of the presets file.
func DefaultPresetsPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "motorvia", "presets.toml")
}

// LoadPresets reads the presets file, expanding ${VAR} environment
// variables. A missing file is not an error: there are simply no presets.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Presets{Presets: map[string]Preset{}}, nil
		}
		return nil, fmt.Errorf("reading presets file: %w", err)
	}

	expanded := expandPresetEnvVars(string(data))

	var p Presets
	if _, err := toml.Decode(expanded, &p); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	if p.Presets == nil {
		p.Presets = map[string]Preset{}
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validating presets: %w", err)
	}

	return &p, nil
}

// Validate checks that every preset names a screen.
func (p *Presets) Validate() error {
	for name, preset := range p.Presets {
		if preset.Screen == "" {
			return fmt.Errorf("preset %q: screen is required", name)
		}
	}
	return nil
}

// Get returns the named preset.
func (p *Presets) Get(name string) (Preset, bool) {
	preset, ok := p.Presets[name]
	return preset, ok
}

// ForScreen returns the names of presets saved for the given screen.
func (p *Presets) ForScreen(screen string) []string {
	var names []string
	for name, preset := range p.Presets {
		if preset.Screen == screen {
			names = append(names, name)
		}
	}
	return names
}

// expandPresetEnvVars replaces ${VAR} with the environment value, matching
// the main config file's expansion rules.
func expandPresetEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
