package cli

import (
	"fmt"
	"io"
	"strings"

	"bomkit/internal/batch"
)

// printBanner writes the pre-run notice: scanned directory, active filters,
// and the dry-run warning when applicable.
func printBanner(w io.Writer, cfg batch.Config) {
	fmt.Fprintf(w, "Scanning directory: %s\n", cfg.Root)
	if cfg.AllFiles() {
		fmt.Fprintln(w, "File types: all files")
	} else {
		fmt.Fprintf(w, "File types: %s\n", strings.Join(cfg.Extensions, ", "))
	}
	fmt.Fprintf(w, "Excluded directories: %s\n", strings.Join(cfg.ExcludeDirs, ", "))
	if cfg.DryRun {
		fmt.Fprintln(w, "*** Dry run - no files will be modified ***")
	}
}

// printSummary writes the fixed-format summary block for one completed run.
func printSummary(w io.Writer, cfg batch.Config, stats batch.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 50))

	if cfg.Mode == batch.ModeRemove {
		fmt.Fprintln(w, "BOM removal complete. Statistics:")
		fmt.Fprintf(w, "Files checked: %d\n", stats.TotalFound)
		fmt.Fprintf(w, "BOM removed: %d\n", stats.BomRemoved)
		fmt.Fprintf(w, "No BOM: %d\n", stats.NoBom)
	} else {
		fmt.Fprintln(w, "BOM add complete. Statistics:")
		fmt.Fprintf(w, "Files found: %d\n", stats.TotalFound)
		fmt.Fprintf(w, "BOM added: %d\n", stats.BomAdded)
		fmt.Fprintf(w, "Already had BOM: %d\n", stats.AlreadyHasBom)
	}
	fmt.Fprintf(w, "Not text files: %d\n", stats.NotTextFile)
	fmt.Fprintf(w, "Not UTF-8: %d\n", stats.NotUtf8)
	fmt.Fprintf(w, "Errors: %d\n", stats.Errors)

	if cfg.DryRun {
		fmt.Fprintln(w)
		if cfg.Mode == batch.ModeRemove {
			fmt.Fprintf(w, "Dry run: a real run would remove the BOM from %d files\n", stats.DryRun)
		} else {
			fmt.Fprintf(w, "Dry run: a real run would add a BOM to %d files\n", stats.DryRun)
		}
	}
}
