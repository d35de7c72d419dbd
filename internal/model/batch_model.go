package model

// SkipReasonMissingResult marks files the webhook returned no result for.
const SkipReasonMissingResult = "missing_analysis_result"

// PairFailure records a persistence failure for one correlated pair.
type PairFailure struct {
	File SubmissionFile
	Err  error
}

// BatchResult aggregates the outcome of one batch submission. Every
// submitted file lands in exactly one of Created, Skipped or Failures.
type BatchResult struct {
	Created  []Candidate
	Skipped  []SubmissionFile
	Failures []PairFailure
}
