package model

// SubmissionFile is one résumé payload inside a batch. Ordinal is the
// position in the submitted batch and the only key used to correlate
// the file with an analysis result.
type SubmissionFile struct {
	Ordinal int    `json:"ordinal"`
	Name    string `json:"name"`
	Content []byte `json:"-"`
}

// AnalysisResult is one candidate evaluation returned by the analysis
// webhook. Score is kept as raw text until persistence coerces it.
type AnalysisResult struct {
	Name    string `json:"name"`
	Score   string `json:"score"`
	Summary string `json:"summary"`
	Phone   string `json:"telefone"`
}

// CorrelatedPair binds a submitted file to the analysis result at the
// same ordinal. Result is nil when the webhook returned fewer results
// than files; such pairs are skipped, not persisted.
type CorrelatedPair struct {
	File   SubmissionFile
	Result *AnalysisResult
}

// RowRef is a Baserow link-row value.
type RowRef struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// FileRef is a Baserow user-file value.
type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Candidate is a row of the candidatos table, with the table's
// Portuguese field names on the wire.
type Candidate struct {
	ID      int64     `json:"id"`
	Name    string    `json:"nome"`
	Phone   string    `json:"telefone"`
	Score   int       `json:"score"`
	Summary string    `json:"resumo_ia"`
	Job     []RowRef  `json:"vaga"`
	User    []RowRef  `json:"usuario"`
	Resume  []FileRef `json:"curriculo"`
}
