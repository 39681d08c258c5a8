package report

import (
	"strings"
	"testing"

	"github.com/jamzmusic/jamz/internal/organize"
)

func TestWriteRenames(t *testing.T) {
	results := []organize.RenameResult{
		{OldName: "track.mp3", NewName: "11 Queen - Bohemian Rhapsody.mp3"},
		{OldName: "b.flac", NewName: "01 Queen - Death on Two Legs.flac"},
	}

	var b strings.Builder
	WriteRenames(&b, results, false)
	out := b.String()

	if !strings.Contains(out, "Renamed the following files") {
		t.Error("heading missing")
	}
	if strings.Contains(out, "Dry run") {
		t.Error("real run must not claim to be a dry run")
	}
	for _, want := range []string{"track.mp3", "->", "11 Queen - Bohemian Rhapsody.mp3", "b.flac"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRenames_DryRunHeading(t *testing.T) {
	var b strings.Builder
	WriteRenames(&b, nil, true)

	if !strings.Contains(b.String(), "Dry run. Would have renamed the following files") {
		t.Errorf("dry-run heading missing:\n%s", b.String())
	}
}

func TestWriteMoves(t *testing.T) {
	results := []organize.MoveResult{
		{Path: "/incoming/track.mp3", TargetDir: "/music/Queen/Jazz"},
	}

	var b strings.Builder
	WriteMoves(&b, results, true)
	out := b.String()

	if !strings.Contains(out, "Dry run. Would have moved the following files") {
		t.Error("dry-run heading missing")
	}
	if !strings.Contains(out, "/incoming/track.mp3") || !strings.Contains(out, "/music/Queen/Jazz") {
		t.Errorf("move rows missing:\n%s", out)
	}
}
