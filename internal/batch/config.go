package batch

// Mode selects which per-file procedure the runner applies.
type Mode string

const (
	ModeAdd    Mode = "add"    // Prepend the UTF-8 BOM to matching files.
	ModeRemove Mode = "remove" // Strip the UTF-8 BOM from matching files.
)

// Config holds the settings for one batch run. It is built once by the CLI
// layer and never mutated afterwards.
type Config struct {
	// Root is the traversal root; the executables pass the process working
	// directory, tests pass whatever tree they built.
	Root string

	Mode Mode

	// Extensions are matched as an exact, case-sensitive "."+ext suffix on the
	// file name. Empty means every file (remove mode without a filter).
	Extensions []string

	// ExcludeDirs are directory names pruned anywhere under Root. A path
	// segment must equal an entry exactly; this is not a substring match.
	ExcludeDirs []string

	// UseGitignore additionally filters candidates against a .gitignore at
	// Root, when one exists.
	UseGitignore bool

	DryRun  bool
	Verbose bool
}

// AllFiles reports whether every file under Root is a candidate.
func (c Config) AllFiles() bool {
	return len(c.Extensions) == 0
}
