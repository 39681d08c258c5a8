package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
//
// Every field is a default: command-line flags override whatever the
// settings file says for a single invocation.
type Settings struct {
	// DefaultTemplate is used by the rename workflow when no template
	// argument is given on the command line (TUI prefills it too).
	DefaultTemplate string `json:"default_template"`

	// Recursive descends the whole directory tree instead of only the
	// top level.
	Recursive bool `json:"recursive"`

	// DryRun reports intended changes without touching the filesystem.
	DryRun bool `json:"dry_run"`

	// IgnoreErrors skips files whose tags don't satisfy the template
	// instead of aborting the run.
	IgnoreErrors bool `json:"ignore_errors"`

	// Verbose enables per-file skip diagnostics.
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultTemplate: "{padded_tracknumber} {artist} - {title}{original_suffix}",
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so a fresh
// install works without any configuration.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the conventional settings file location,
// ~/.config/jamz/settings.json.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "jamz", "settings.json")
}
