package tags

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
)

// ErrNoTags indicates a file with no parseable tag metadata. Files
// yielding this error are skipped, they never fail a run.
var ErrNoTags = errors.New("no identifiable tags")

// RawTags is the tag set as the reading library produced it.
//
// Keys are whatever the format uses natively: ID3 frame IDs like "TRCK"
// and "TPE1" for MP3, lowercase field names like "artist" and
// "tracknumber" for vorbis comments (FLAC, OGG). Values may be scalars or
// []any when a field is repeated.
type RawTags map[string]any

// Read extracts the raw tag set from the audio file at path.
//
// MP3 files are read with id3v2 so that repeated frames survive as
// multi-valued entries; if the file carries no ID3v2 tag (ID3v1-only
// files, mislabelled extensions) it falls back to the generic reader.
// Every other format goes through dhowden/tag directly.
//
// Returns ErrNoTags when no reader finds usable metadata.
func Read(path string) (RawTags, error) {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if raw, err := readID3(path); err == nil {
			return raw, nil
		}
	}
	return readGeneric(path)
}

// readID3 reads ID3v2 frames from an MP3 file. Each frame ID maps to its
// value; frame IDs that occur more than once map to a []any of values.
func readID3(path string) (RawTags, error) {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("parsing ID3 tag: %w", err)
	}
	defer id3.Close()

	if id3.Count() == 0 {
		return nil, ErrNoTags
	}

	raw := make(RawTags)
	for id, frames := range id3.AllFrames() {
		values := make([]any, 0, len(frames))
		for _, frame := range frames {
			values = append(values, frameValue(frame))
		}
		if len(values) == 1 {
			raw[id] = values[0]
		} else {
			raw[id] = values
		}
	}
	return raw, nil
}

// frameValue unwraps the text carried by common frame types. Frames with
// no sensible text form (pictures, unknown binary frames) are kept as the
// frame itself, which still stringifies for template use.
func frameValue(frame id3v2.Framer) any {
	switch f := frame.(type) {
	case id3v2.TextFrame:
		return f.Text
	case id3v2.CommentFrame:
		return f.Text
	case id3v2.UnsynchronisedLyricsFrame:
		return f.Lyrics
	case id3v2.UserDefinedTextFrame:
		return f.Value
	default:
		return frame
	}
}

// readGeneric reads any format dhowden/tag understands and returns its
// raw key/value view of the metadata.
func readGeneric(path string) (RawTags, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return nil, ErrNoTags
		}
		// Unrecognized container formats also count as tagless rather
		// than fatal: the walk hands us every file in the directory.
		return nil, ErrNoTags
	}

	raw := make(RawTags, len(m.Raw()))
	for key, value := range m.Raw() {
		raw[key] = value
	}
	if len(raw) == 0 {
		return nil, ErrNoTags
	}
	return raw, nil
}
