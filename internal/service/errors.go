package service

import "errors"

var (
	// ErrAnalysisUnavailable covers transport failures, non-2xx
	// statuses and success:false replies from the analysis webhook.
	// It aborts the whole batch.
	ErrAnalysisUnavailable = errors.New("analysis service unavailable")

	// ErrAnalysisMalformed means the webhook answered but the payload
	// could not be decoded into the expected shape. It aborts the
	// whole batch.
	ErrAnalysisMalformed = errors.New("analysis response malformed")

	// ErrUploadFailed means the résumé blob upload failed; no record
	// is created for that pair.
	ErrUploadFailed = errors.New("resume upload failed")

	// ErrRecordCreateFailed means row creation failed after a
	// successful upload. The uploaded file stays orphaned in storage.
	ErrRecordCreateFailed = errors.New("candidate record creation failed")
)
