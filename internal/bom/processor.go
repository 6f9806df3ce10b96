package bom

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Processor applies the add/remove procedure to single files. Fs is the tree
// being operated on; Out receives the per-file verbose lines. Neither method
// returns an error: every failure is folded into the Result so a batch run
// can always finish the whole tree.
type Processor struct {
	Fs      afero.Fs
	DryRun  bool
	Verbose bool
	Out     io.Writer
}

// NewProcessor returns a Processor writing verbose output to stdout.
func NewProcessor(fs afero.Fs, dryRun, verbose bool) *Processor {
	return &Processor{Fs: fs, DryRun: dryRun, Verbose: verbose, Out: os.Stdout}
}

// Add prepends the UTF-8 BOM to the file at path. Files that already carry a
// BOM, fail the text heuristic, or are not valid UTF-8 are left untouched.
func (p *Processor) Add(path string) Result {
	if HasBOM(p.Fs, path) {
		p.logf("Skipping %s - already has BOM\n", path)
		return Result{Outcome: OutcomeAlreadyHasBom}
	}
	if !IsText(p.Fs, path) {
		p.logf("Skipping %s - probably not a text file\n", path)
		return Result{Outcome: OutcomeNotTextFile}
	}

	content, err := afero.ReadFile(p.Fs, path)
	if err != nil {
		p.logf("Failed to process %s: %v\n", path, err)
		return Result{Outcome: OutcomeError, Detail: err.Error()}
	}
	if !utf8.Valid(content) {
		p.logf("Decode failed for %s - probably not UTF-8\n", path)
		return Result{Outcome: OutcomeNotUtf8}
	}

	if p.DryRun {
		p.logf("[dry run] would add BOM to %s\n", path)
		return Result{Outcome: OutcomeDryRun}
	}

	out := make([]byte, 0, len(Marker)+len(content))
	out = append(out, Marker...)
	out = append(out, content...)
	if err := afero.WriteFile(p.Fs, path, out, 0644); err != nil {
		p.logf("Failed to process %s: %v\n", path, err)
		return Result{Outcome: OutcomeError, Detail: err.Error()}
	}

	p.logf("Added BOM to %s\n", path)
	return Result{Outcome: OutcomeBomAdded}
}

// Remove strips the UTF-8 BOM from the file at path. Files without a BOM or
// failing the text heuristic are left untouched; the BOM itself is treated as
// a marker, never as content, so only the bytes after it are validated and
// written back.
func (p *Processor) Remove(path string) Result {
	if !HasBOM(p.Fs, path) {
		p.logf("Skipping %s - no BOM\n", path)
		return Result{Outcome: OutcomeNoBom}
	}
	if !IsText(p.Fs, path) {
		p.logf("Skipping %s - probably not a text file\n", path)
		return Result{Outcome: OutcomeNotTextFile}
	}

	content, err := afero.ReadFile(p.Fs, path)
	if err != nil {
		p.logf("Failed to process %s: %v\n", path, err)
		return Result{Outcome: OutcomeError, Detail: err.Error()}
	}
	content = bytes.TrimPrefix(content, Marker)
	if !utf8.Valid(content) {
		p.logf("Decode failed for %s - probably not UTF-8\n", path)
		return Result{Outcome: OutcomeNotUtf8}
	}

	if p.DryRun {
		p.logf("[dry run] would remove BOM from %s\n", path)
		return Result{Outcome: OutcomeDryRun}
	}

	if err := afero.WriteFile(p.Fs, path, content, 0644); err != nil {
		p.logf("Failed to process %s: %v\n", path, err)
		return Result{Outcome: OutcomeError, Detail: err.Error()}
	}

	p.logf("Removed BOM from %s\n", path)
	return Result{Outcome: OutcomeBomRemoved}
}

func (p *Processor) logf(format string, args ...any) {
	if !p.Verbose {
		return
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, args...)
}
