// Package tags reads audio metadata and shapes it for file naming.
//
// # Reading
//
// Read returns a file's tags with the keys the format uses natively:
//
//	raw, err := tags.Read("/music/song.flac")
//	// vorbis: raw["artist"], raw["tracknumber"], ...
//	// mp3:    raw["TPE1"], raw["TRCK"], ...
//
// MP3 files are read with bogem/id3v2, everything else with dhowden/tag.
//
// # Normalization
//
// Tag formats disagree on value shape: a field may be a single value or a
// list. Normalize flattens everything to one scalar per key and adds two
// synthetic keys for templates, padded_tracknumber and original_suffix.
//
// # Resolving
//
// Resolve composes the two steps with template expansion:
//
//	name, err := tags.Resolve(raw, ".flac", "{artist} - {title}{original_suffix}")
package tags
