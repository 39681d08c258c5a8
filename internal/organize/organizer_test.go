package organize

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/jamzmusic/jamz/internal/template"
)

// writeMP3 creates an MP3 fixture carrying the given ID3 text frames.
func writeMP3(t *testing.T, path string, frames map[string]string) {
	t.Helper()

	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	defer id3.Close()

	for id, text := range frames {
		id3.AddTextFrame(id, id3v2.EncodingUTF8, text)
	}
	if err := id3.Save(); err != nil {
		t.Fatal(err)
	}
}

func queenFrames() map[string]string {
	return map[string]string{
		"TPE1": "Queen",
		"TALB": "A Night at the Opera",
		"TIT2": "Bohemian Rhapsody",
		"TRCK": "11/12",
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	writeMP3(t, filepath.Join(dir, "track.mp3"), queenFrames())

	org := New(nil)
	results, err := org.Rename(dir, "{padded_tracknumber} {TPE1} - {TIT2}{original_suffix}", Options{})
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	want := RenameResult{OldName: "track.mp3", NewName: "11 Queen - Bohemian Rhapsody.mp3"}
	if results[0] != want {
		t.Errorf("result = %+v, want %+v", results[0], want)
	}

	if exists(filepath.Join(dir, "track.mp3")) {
		t.Error("original file should be gone")
	}
	if !exists(filepath.Join(dir, "11 Queen - Bohemian Rhapsody.mp3")) {
		t.Error("renamed file should exist")
	}
}

func TestRename_DryRunNeverMutates(t *testing.T) {
	dir := t.TempDir()
	writeMP3(t, filepath.Join(dir, "track.mp3"), queenFrames())

	org := New(nil)
	results, err := org.Rename(dir, "{TPE1} - {TIT2}{original_suffix}", Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].NewName != "Queen - Bohemian Rhapsody.mp3" {
		t.Errorf("NewName = %q", results[0].NewName)
	}

	if !exists(filepath.Join(dir, "track.mp3")) {
		t.Error("dry run must leave the original file in place")
	}
	if exists(filepath.Join(dir, "Queen - Bohemian Rhapsody.mp3")) {
		t.Error("dry run must not create the renamed file")
	}
}

func TestRename_TemplateErrorAborts(t *testing.T) {
	dir := t.TempDir()
	writeMP3(t, filepath.Join(dir, "track.mp3"), map[string]string{"TPE1": "Queen"})

	org := New(nil)
	_, err := org.Rename(dir, "{TALB}", Options{})
	if err == nil {
		t.Fatal("run should abort on a missing template key")
	}
	var keyErr *template.KeyError
	if !errors.As(err, &keyErr) {
		t.Errorf("error should wrap *template.KeyError, got %v", err)
	}
	if !exists(filepath.Join(dir, "track.mp3")) {
		t.Error("file must be untouched after an aborted run")
	}
}

func TestRename_IgnoreErrorsSkips(t *testing.T) {
	dir := t.TempDir()
	writeMP3(t, filepath.Join(dir, "incomplete.mp3"), map[string]string{"TPE1": "Queen"})
	writeMP3(t, filepath.Join(dir, "complete.mp3"), queenFrames())

	var skips []string
	org := New(func(event ProgressEvent) {
		if event.Level == LevelVerbose {
			skips = append(skips, event.Message)
		}
	})

	results, err := org.Rename(dir, "{TALB}{original_suffix}", Options{IgnoreErrors: true})
	if err != nil {
		t.Fatalf("ignore-errors run should not abort: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (only the complete file)", len(results))
	}
	if results[0].OldName != "complete.mp3" {
		t.Errorf("renamed %q, want complete.mp3", results[0].OldName)
	}

	found := false
	for _, msg := range skips {
		if strings.Contains(msg, "incomplete.mp3") {
			found = true
		}
	}
	if !found {
		t.Error("skip diagnostic for incomplete.mp3 expected")
	}
	if !exists(filepath.Join(dir, "incomplete.mp3")) {
		t.Error("skipped file must be untouched")
	}
}

func TestRename_SkipsUntaggedFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not audio"), 0644); err != nil {
		t.Fatal(err)
	}

	var events []ProgressEvent
	org := New(func(event ProgressEvent) { events = append(events, event) })

	results, err := org.Rename(dir, "{TPE1}{original_suffix}", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if len(events) == 0 {
		t.Error("untagged file should produce a skip diagnostic")
	}
	if !exists(filepath.Join(dir, "notes.txt")) {
		t.Error("untagged file must be untouched")
	}
}

func TestRename_Recursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeMP3(t, filepath.Join(sub, "deep.mp3"), queenFrames())

	org := New(nil)

	results, err := org.Rename(dir, "{TIT2}{original_suffix}", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("non-recursive run should not see subdirectory files, got %d", len(results))
	}

	results, err = org.Rename(dir, "{TIT2}{original_suffix}", Options{Recursive: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("recursive run should rename the nested file, got %d results", len(results))
	}
	if !exists(filepath.Join(sub, "Bohemian Rhapsody.mp3")) {
		t.Error("nested file should be renamed within its own directory")
	}
}

func TestAdd(t *testing.T) {
	src := t.TempDir()
	target := t.TempDir()
	writeMP3(t, filepath.Join(src, "track.mp3"), queenFrames())

	org := New(nil)
	results, err := org.Add(src, target, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	wantDir := filepath.Join(target, "Queen", "A Night at the Opera")
	if results[0].TargetDir != wantDir {
		t.Errorf("TargetDir = %q, want %q", results[0].TargetDir, wantDir)
	}
	if !exists(filepath.Join(wantDir, "track.mp3")) {
		t.Error("file should be moved into the artist/album directory")
	}
	if exists(filepath.Join(src, "track.mp3")) {
		t.Error("source file should be gone")
	}
}

func TestAdd_MissingArtistSkipsWithWarning(t *testing.T) {
	src := t.TempDir()
	target := t.TempDir()
	writeMP3(t, filepath.Join(src, "anon.mp3"), map[string]string{"TALB": "Lemonade"})

	var warnings []string
	org := New(func(event ProgressEvent) {
		if event.Level == LevelWarning {
			warnings = append(warnings, event.Message)
		}
	})

	results, err := org.Add(src, target, Options{})
	if err != nil {
		t.Fatalf("missing metadata must never abort an add run: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "artist") {
		t.Errorf("expected one artist warning, got %v", warnings)
	}
	if !exists(filepath.Join(src, "anon.mp3")) {
		t.Error("skipped file must stay in place")
	}
}

func TestAdd_DryRunNeverMutates(t *testing.T) {
	src := t.TempDir()
	target := t.TempDir()
	writeMP3(t, filepath.Join(src, "track.mp3"), queenFrames())

	org := New(nil)
	results, err := org.Add(src, target, Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !exists(filepath.Join(src, "track.mp3")) {
		t.Error("dry run must leave the source file in place")
	}
	if exists(filepath.Join(target, "Queen")) {
		t.Error("dry run must not create target directories")
	}
}
