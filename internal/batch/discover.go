package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
	"github.com/spf13/afero"
)

// Discover walks cfg.Root and returns the candidate files: those matching the
// extension filter (or every file when none is configured), with excluded
// directory names pruned anywhere under the root. Traversal errors on
// individual entries are reported to stderr and skipped; the walk always
// covers the rest of the tree. Paths come back sorted lexicographically so
// runs are deterministic.
func Discover(fs afero.Fs, cfg Config) ([]string, error) {
	excluded := make(map[string]bool, len(cfg.ExcludeDirs))
	for _, name := range cfg.ExcludeDirs {
		excluded[name] = true
	}

	var matcher gitignore.IgnoreMatcher
	if cfg.UseGitignore {
		matcher = loadGitignore(fs, cfg.Root)
	}

	var files []string
	err := afero.Walk(fs, cfg.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error accessing path %s: %v\n", path, err)
			return nil
		}
		if path == cfg.Root {
			return nil
		}

		if info.IsDir() {
			if excluded[info.Name()] {
				return filepath.SkipDir
			}
			if matcher != nil && matcher.Match(path, true) {
				return filepath.SkipDir
			}
			return nil
		}

		// An entry named like an excluded directory is skipped even when it is
		// a file: the exclusion matches path segments, and the file name is
		// the final segment.
		if excluded[info.Name()] {
			return nil
		}
		if matcher != nil && matcher.Match(path, false) {
			return nil
		}
		if matchesExtension(info.Name(), cfg.Extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", cfg.Root, err)
	}

	sort.Strings(files)
	return files, nil
}

// matchesExtension reports whether name ends with "."+ext for one of the
// configured extensions (case-sensitive). An empty set matches every file.
func matchesExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(name, "."+ext) {
			return true
		}
	}
	return false
}

// loadGitignore builds a matcher from the .gitignore at root, if one exists.
// A missing or unreadable file just disables the filter.
func loadGitignore(fs afero.Fs, root string) gitignore.IgnoreMatcher {
	f, err := fs.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()
	return gitignore.NewGitIgnoreFromReader(root, f)
}
