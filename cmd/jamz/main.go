package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamzmusic/jamz/internal/config"
	"github.com/jamzmusic/jamz/internal/organize"
)

var (
	configPath string
	settings   *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "jamz",
	Short: "CLI tools for organizing your music library",
	Long: `jamz organizes a music library using the metadata tags embedded in
audio files: rename files in place from a template, or move them into an
artist/album directory layout.

For interactive mode, use: jamz-tui`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		settings, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	// An unrecognized subcommand prints a message and exits normally.
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			fmt.Printf("Unknown command %q\n\n", args[0])
		}
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to settings file (default ~/.config/jamz/settings.json)")
}

// printProgress returns the progress callback for CLI runs: verbose
// diagnostics are dropped unless asked for, everything else is printed
// with a level prefix.
func printProgress(verbose bool) func(organize.ProgressEvent) {
	return func(event organize.ProgressEvent) {
		if event.Level == organize.LevelVerbose && !verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case organize.LevelError:
			prefix = "❌ "
		case organize.LevelWarning:
			prefix = "⚠️  "
		case organize.LevelSuccess:
			prefix = "✅ "
		case organize.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
