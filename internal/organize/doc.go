// Package organize coordinates the rename and add workflows.
//
// An Organizer walks a directory, reads each file's tags, and either
// renames files in place from a template or moves them into an
// artist/album library layout. Per-file diagnostics flow through a
// progress callback:
//
//	org := organize.New(func(event organize.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	results, err := org.Rename("/music", "{artist} - {title}{original_suffix}",
//	    organize.Options{DryRun: true})
//
// Processing is sequential, one file at a time, with no cross-file state:
// a failure or interruption leaves already-processed files changed and
// the rest untouched.
package organize
