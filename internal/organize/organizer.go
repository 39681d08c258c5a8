package organize

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jamzmusic/jamz/internal/library"
	"github.com/jamzmusic/jamz/internal/tags"
	"github.com/jamzmusic/jamz/internal/walker"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a per-file diagnostic during a run.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Options controls a single rename or add run.
type Options struct {
	// Recursive descends the whole tree instead of one directory level.
	Recursive bool

	// DryRun computes and reports results without mutating the
	// filesystem.
	DryRun bool

	// IgnoreErrors makes template failures skip the file instead of
	// aborting the run. It applies only to the rename workflow; missing
	// artist/album during add always just skips.
	IgnoreErrors bool
}

// RenameResult records one renamed file for reporting.
type RenameResult struct {
	// OldName is the file's original base name.
	OldName string

	// NewName is the template-derived base name.
	NewName string
}

// MoveResult records one file's planned library location.
type MoveResult struct {
	// Path is the file's current full path.
	Path string

	// TargetDir is the derived artist/album directory.
	TargetDir string
}

// Organizer runs the two workflows over a directory of audio files.
// Files are processed strictly one at a time; a crash mid-run leaves
// earlier files done and later files untouched, there is no rollback.
type Organizer struct {
	onProgress func(ProgressEvent)
}

// New creates an Organizer. onProgress receives per-file diagnostics and
// may be nil.
func New(onProgress func(ProgressEvent)) *Organizer {
	return &Organizer{onProgress: onProgress}
}

func (o *Organizer) progress(level ProgressLevel, format string, args ...any) {
	if o.onProgress != nil {
		o.onProgress(ProgressEvent{Message: fmt.Sprintf(format, args...), Level: level})
	}
}

// Rename renames every taggable file under dir according to tmpl.
//
// Files without tags are skipped. A template failure aborts the run
// unless opts.IgnoreErrors is set, in which case the file is skipped with
// a diagnostic. With opts.DryRun the returned results describe what would
// have happened but nothing on disk changes.
func (o *Organizer) Rename(dir, tmpl string, opts Options) ([]RenameResult, error) {
	files, err := walker.Files(dir, opts.Recursive)
	if err != nil {
		return nil, err
	}

	var results []RenameResult
	for _, path := range files {
		result, err := o.renameFile(path, tmpl, opts)
		if err != nil {
			return results, err
		}
		if result != nil {
			results = append(results, *result)
		}
	}
	return results, nil
}

// renameFile processes a single file. A nil result with nil error means
// the file was skipped.
func (o *Organizer) renameFile(path, tmpl string, opts Options) (*RenameResult, error) {
	base := filepath.Base(path)

	raw, err := tags.Read(path)
	if err != nil {
		if errors.Is(err, tags.ErrNoTags) {
			o.progress(LevelVerbose, "Skipping %s, no identifiable tags", base)
			return nil, nil
		}
		o.progress(LevelWarning, "Skipping %s, cannot read tags: %v", base, err)
		return nil, nil
	}

	newName, err := tags.Resolve(raw, filepath.Ext(path), tmpl)
	if err != nil {
		if !opts.IgnoreErrors {
			return nil, fmt.Errorf("applying template to %s: %w", base, err)
		}
		o.progress(LevelVerbose, "Skipping %s, error applying template: %v", base, err)
		return nil, nil
	}

	if !opts.DryRun {
		if err := library.Rename(path, newName); err != nil {
			return nil, fmt.Errorf("renaming %s: %w", base, err)
		}
	}

	return &RenameResult{OldName: base, NewName: newName}, nil
}

// Add moves every taggable file under src into target/<artist>/<album>.
//
// Files missing artist or album tags are skipped with a warning; that
// never aborts the run. The plan is computed for all files first, then
// applied (unless opts.DryRun), creating target directories as needed.
func (o *Organizer) Add(src, target string, opts Options) ([]MoveResult, error) {
	files, err := walker.Files(src, opts.Recursive)
	if err != nil {
		return nil, err
	}

	var results []MoveResult
	for _, path := range files {
		raw, err := tags.Read(path)
		if err != nil {
			if errors.Is(err, tags.ErrNoTags) {
				o.progress(LevelVerbose, "Skipping %s, no identifiable tags", filepath.Base(path))
			} else {
				o.progress(LevelWarning, "Skipping %s, cannot read tags: %v", filepath.Base(path), err)
			}
			continue
		}

		normalized := tags.Normalize(raw, filepath.Ext(path))
		targetDir, err := library.TargetDir(target, normalized)
		if err != nil {
			var missing *library.MissingFieldError
			if errors.As(err, &missing) {
				o.progress(LevelWarning, "Failed to find %s for file %s, skipping...", missing.Field, path)
				continue
			}
			return results, err
		}

		results = append(results, MoveResult{Path: path, TargetDir: targetDir})
	}

	if opts.DryRun {
		return results, nil
	}

	for _, result := range results {
		if err := library.Move(result.Path, result.TargetDir); err != nil {
			return results, fmt.Errorf("moving %s: %w", filepath.Base(result.Path), err)
		}
		o.progress(LevelVerbose, "Moved %s -> %s", filepath.Base(result.Path), result.TargetDir)
	}

	return results, nil
}
