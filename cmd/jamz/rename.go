package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jamzmusic/jamz/internal/organize"
	"github.com/jamzmusic/jamz/internal/report"
)

var (
	renameRecursive    bool
	renameDryRun       bool
	renameIgnoreErrors bool
	renameVerbose      bool
)

var renameCmd = &cobra.Command{
	Use:   "rename <directory> [template]",
	Short: "Rename audio files based on their tags",
	Long: `Rename audio files based on metadata tags.

The template names each file using {key} placeholders that are filled
from the file's own tags. Keys are the tag names the file format uses
natively: "artist", "title", "tracknumber" for FLAC and OGG, ID3 frame
IDs like "TPE1", "TIT2", "TRCK" for MP3. When no template argument is
given, the default_template from the settings file is used.

Special tags available to every template:

  padded_tracknumber  The tracknumber (if found) padded to two digits (e.g. 2 -> 02)
  original_suffix     The original suffix of the file, e.g. '.flac' if the file is named 'song.flac'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)

	renameCmd.Flags().BoolVarP(&renameRecursive, "recursive", "r", false, "recursively descend the file tree")
	renameCmd.Flags().BoolVarP(&renameDryRun, "dry-run", "d", false, "print the new names of the files, but don't actually rename them")
	renameCmd.Flags().BoolVarP(&renameIgnoreErrors, "ignore-errors", "i", false, "skip over files that lead to errors")
	renameCmd.Flags().BoolVarP(&renameVerbose, "verbose", "v", false, "enable verbose logging")
}

func runRename(cmd *cobra.Command, args []string) error {
	// Settings supply defaults; explicit flags win.
	if !cmd.Flags().Changed("recursive") {
		renameRecursive = settings.Recursive
	}
	if !cmd.Flags().Changed("dry-run") {
		renameDryRun = settings.DryRun
	}
	if !cmd.Flags().Changed("ignore-errors") {
		renameIgnoreErrors = settings.IgnoreErrors
	}
	if !cmd.Flags().Changed("verbose") {
		renameVerbose = settings.Verbose
	}

	tmpl := settings.DefaultTemplate
	if len(args) > 1 {
		tmpl = args[1]
	}

	org := organize.New(printProgress(renameVerbose))
	results, err := org.Rename(args[0], tmpl, organize.Options{
		Recursive:    renameRecursive,
		DryRun:       renameDryRun,
		IgnoreErrors: renameIgnoreErrors,
	})
	if err != nil {
		return err
	}

	report.WriteRenames(os.Stdout, results, renameDryRun)
	return nil
}
