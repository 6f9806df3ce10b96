package bom

// Outcome classifies the result of processing a single file. Exactly one
// outcome is produced per file; outcomes only drive counters and verbose
// output, nothing is persisted.
type Outcome string

const (
	OutcomeBomAdded      Outcome = "bom_added"
	OutcomeBomRemoved    Outcome = "bom_removed"
	OutcomeAlreadyHasBom Outcome = "already_has_bom"
	OutcomeNoBom         Outcome = "no_bom"
	OutcomeNotTextFile   Outcome = "not_text_file"
	OutcomeNotUtf8       Outcome = "not_utf8"
	OutcomeDryRun        Outcome = "dry_run"
	OutcomeError         Outcome = "error"
)

// Result is the outcome of processing one file. Detail is set only for
// OutcomeError and carries the underlying error text for verbose output;
// it is never aggregated beyond a count.
type Result struct {
	Outcome Outcome
	Detail  string
}
