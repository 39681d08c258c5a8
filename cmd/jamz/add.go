package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jamzmusic/jamz/internal/organize"
	"github.com/jamzmusic/jamz/internal/report"
)

var (
	addRecursive bool
	addDryRun    bool
)

var addCmd = &cobra.Command{
	Use:   "add <source_directory> <target_directory>",
	Short: "Move audio files into your existing collection",
	Long: `Move audio files into your existing collection.

Each file is moved to <target_directory>/<artist>/<album>/, with artist
and album read from the file's tags ("artist" falling back to the ID3
"TPE1" frame, "album" falling back to "TALB"). Files missing either tag
are skipped with a warning.`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().BoolVarP(&addRecursive, "recursive", "r", false, "recursively descend the file tree")
	addCmd.Flags().BoolVarP(&addDryRun, "dry-run", "d", false, "print the new locations of the files, but don't actually move them")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("recursive") {
		addRecursive = settings.Recursive
	}
	if !cmd.Flags().Changed("dry-run") {
		addDryRun = settings.DryRun
	}

	org := organize.New(printProgress(settings.Verbose))
	results, err := org.Add(args[0], args[1], organize.Options{
		Recursive: addRecursive,
		DryRun:    addDryRun,
	})
	if err != nil {
		return err
	}

	report.WriteMoves(os.Stdout, results, addDryRun)
	return nil
}
