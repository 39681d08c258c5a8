package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.DefaultTemplate == "" {
		t.Error("DefaultTemplate should not be empty")
	}
	if s.DryRun || s.Recursive || s.IgnoreErrors || s.Verbose {
		t.Error("boolean options should default to false")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope", "settings.json"))
	if err != nil {
		t.Fatalf("Load of a missing file should not error: %v", err)
	}
	if s.DefaultTemplate != DefaultSettings().DefaultTemplate {
		t.Error("missing file should yield default settings")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jamz", "settings.json")

	s := DefaultSettings()
	s.DefaultTemplate = "{artist}{original_suffix}"
	s.Recursive = true
	s.Verbose = true

	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.DefaultTemplate != "{artist}{original_suffix}" {
		t.Errorf("DefaultTemplate = %q after round trip", loaded.DefaultTemplate)
	}
	if !loaded.Recursive || !loaded.Verbose {
		t.Error("boolean options lost in round trip")
	}
	if loaded.DryRun {
		t.Error("DryRun should still be false")
	}
}
