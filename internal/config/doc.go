// Package config provides configuration management for jamz.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Template "{padded_tracknumber} {artist} - {title}{original_suffix}"
//	// Non-recursive, real run, errors abort
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Corrupt file; a missing file just yields defaults
//	}
//
// # Saving Settings
//
//	settings.Recursive = true
//	err := settings.Save(config.DefaultPath())
package config
