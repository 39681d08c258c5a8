package tags

import (
	"fmt"
	"strings"

	"github.com/jamzmusic/jamz/internal/template"
)

// Synthetic keys added by Normalize, available to rename templates
// alongside the file's own tags.
const (
	// KeyPaddedTrack is the track number padded to at least two digits,
	// with any "/total" suffix removed ("3/12" becomes "03").
	KeyPaddedTrack = "padded_tracknumber"

	// KeyOriginalSuffix is the source file's extension including the dot.
	KeyOriginalSuffix = "original_suffix"
)

// Normalized is a tag set flattened to one scalar value per key.
type Normalized map[string]any

// Normalize flattens raw into a scalar-valued tag set and adds the two
// synthetic keys.
//
// Multi-valued entries keep only their first value; the tag formats that
// allow repetition (vorbis comments, repeated ID3 frames) order values,
// and the first is the conventional primary one. Scalar entries pass
// through untouched, preserving their original type.
//
// KeyPaddedTrack is derived from "TRCK" (preferred) or "tracknumber":
// the text before any '/' separator, zero-padded on the left to a minimum
// width of 2. The key is absent when neither tag exists or the value is
// empty. Three-or-more-digit tracks are kept as-is; padding never
// truncates. KeyOriginalSuffix is set to suffix verbatim.
func Normalize(raw RawTags, suffix string) Normalized {
	normalized := make(Normalized, len(raw)+2)
	for key, value := range raw {
		if seq, ok := value.([]any); ok {
			if len(seq) == 0 {
				continue
			}
			value = seq[0]
		}
		normalized[key] = value
	}

	if track := trackNumber(normalized); track != "" {
		normalized[KeyPaddedTrack] = pad(track, 2)
	}
	normalized[KeyOriginalSuffix] = suffix

	return normalized
}

// trackNumber extracts the numeric track text from the normalized set,
// or "" when no track tag is present.
func trackNumber(normalized Normalized) string {
	value, ok := normalized["TRCK"]
	if !ok {
		value, ok = normalized["tracknumber"]
	}
	if !ok {
		return ""
	}
	track := fmt.Sprint(value)
	if i := strings.IndexByte(track, '/'); i >= 0 {
		track = track[:i]
	}
	return track
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Resolve turns a file's raw tags plus a rename template into the new
// file name (a single path component, not a full path).
//
// suffix is the original file extension including its leading dot; it is
// exposed to the template as {original_suffix}. Resolve is pure: same
// inputs, same output. Template errors (*template.KeyError,
// *template.SyntaxError) propagate untouched so the caller can decide
// between aborting the run and skipping the file.
func Resolve(raw RawTags, suffix, tmpl string) (string, error) {
	return template.Expand(tmpl, Normalize(raw, suffix))
}
