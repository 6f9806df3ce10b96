package batch

import (
	"github.com/spf13/afero"

	"bomkit/internal/bom"
)

// Run discovers candidates under cfg.Root and applies the add or remove
// procedure to each in order, one file fully processed before the next.
// Per-file failures become counters; the run always completes the full
// enumeration.
func Run(fs afero.Fs, cfg Config) (Stats, error) {
	return RunWith(fs, cfg, bom.NewProcessor(fs, cfg.DryRun, cfg.Verbose))
}

// RunWith is Run with an explicit processor, so callers can redirect verbose
// output.
func RunWith(fs afero.Fs, cfg Config, proc *bom.Processor) (Stats, error) {
	var stats Stats

	files, err := Discover(fs, cfg)
	if err != nil {
		return stats, err
	}

	for _, path := range files {
		stats.TotalFound++

		var res bom.Result
		if cfg.Mode == ModeRemove {
			res = proc.Remove(path)
		} else {
			res = proc.Add(path)
		}
		stats.Record(res)
	}

	return stats, nil
}
