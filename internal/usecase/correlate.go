package usecase

import "github.com/focoserv/triagem/internal/model"

// correlate pairs each submitted file with the analysis result at the
// same position. Matching is positional only: the webhook is trusted to
// answer in submission order, and no name, phone or content signal is
// ever consulted. Trailing files without a result get a nil Result;
// extra results are dropped.
func correlate(files []model.SubmissionFile, results []model.AnalysisResult) []model.CorrelatedPair {
	pairs := make([]model.CorrelatedPair, len(files))
	for i, f := range files {
		pairs[i] = model.CorrelatedPair{File: f}
		if i < len(results) {
			pairs[i].Result = &results[i]
		}
	}
	return pairs
}
