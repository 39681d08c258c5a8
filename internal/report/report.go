// Package report renders run results as plain console tables.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/jamzmusic/jamz/internal/organize"
)

// WriteRenames prints the "old -> new" table for a rename run, preceded
// by a heading that says whether anything actually happened.
func WriteRenames(w io.Writer, results []organize.RenameResult, dryRun bool) {
	if dryRun {
		fmt.Fprintln(w, "\nDry run. Would have renamed the following files")
	} else {
		fmt.Fprintln(w, "\nRenamed the following files")
	}
	fmt.Fprintln(w)

	table := plainTable(w)
	for _, result := range results {
		table.Append([]string{result.OldName, "->", result.NewName})
	}
	table.Render()
}

// WriteMoves prints the planned or performed library moves of an add run.
func WriteMoves(w io.Writer, results []organize.MoveResult, dryRun bool) {
	if dryRun {
		fmt.Fprintln(w, "\nDry run. Would have moved the following files")
	} else {
		fmt.Fprintln(w, "\nMoved the following files")
	}
	fmt.Fprintln(w)

	table := plainTable(w)
	for _, result := range results {
		table.Append([]string{result.Path, "->", result.TargetDir})
	}
	table.Render()
}

// plainTable configures a borderless, separator-free table, the
// equivalent of a plain two-column listing.
func plainTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
