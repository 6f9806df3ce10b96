package batch

import "bomkit/internal/bom"

// Stats accumulates outcome counters across one run. The single control
// goroutine owns it; the runner updates it synchronously and the CLI reads it
// once for the summary.
type Stats struct {
	TotalFound    int
	BomAdded      int
	BomRemoved    int
	AlreadyHasBom int
	NoBom         int
	NotTextFile   int
	NotUtf8       int
	DryRun        int
	Errors        int
}

// Record increments the counter matching one per-file result. Error details
// are not retained here, only the count.
func (s *Stats) Record(res bom.Result) {
	switch res.Outcome {
	case bom.OutcomeBomAdded:
		s.BomAdded++
	case bom.OutcomeBomRemoved:
		s.BomRemoved++
	case bom.OutcomeAlreadyHasBom:
		s.AlreadyHasBom++
	case bom.OutcomeNoBom:
		s.NoBom++
	case bom.OutcomeNotTextFile:
		s.NotTextFile++
	case bom.OutcomeNotUtf8:
		s.NotUtf8++
	case bom.OutcomeDryRun:
		s.DryRun++
	case bom.OutcomeError:
		s.Errors++
	}
}
