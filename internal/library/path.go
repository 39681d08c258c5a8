package library

import (
	"fmt"
	"path/filepath"

	"github.com/jamzmusic/jamz/internal/tags"
)

// MissingFieldError indicates a file whose tags carry no usable artist or
// album, so no library location can be derived for it. Such files are
// skipped with a warning; they never abort a run.
type MissingFieldError struct {
	// Field is the logical field that could not be resolved, "artist"
	// or "album".
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("no %s tag found", e.Field)
}

// TargetDir computes the library directory for a file:
// root/<artist>/<album>, with both segments sanitized.
//
// Artist comes from the "artist" tag, falling back to the ID3 "TPE1"
// frame; album from "album" falling back to "TALB". Returns a
// *MissingFieldError naming the first field with neither alternative
// present.
func TargetDir(root string, normalized tags.Normalized) (string, error) {
	artist, err := lookup(normalized, "artist", "TPE1")
	if err != nil {
		return "", err
	}
	album, err := lookup(normalized, "album", "TALB")
	if err != nil {
		return "", err
	}
	return filepath.Join(root, Sanitize(artist), Sanitize(album)), nil
}

// lookup resolves a logical field from its preferred key or the ID3
// frame fallback.
func lookup(normalized tags.Normalized, key, fallback string) (string, error) {
	if value, ok := normalized[key]; ok {
		return fmt.Sprint(value), nil
	}
	if value, ok := normalized[fallback]; ok {
		return fmt.Sprint(value), nil
	}
	return "", &MissingFieldError{Field: key}
}
