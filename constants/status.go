package constants

// ProcessingStatus is the canonical status carried on an OCR result.
type ProcessingStatus string

// Stable values (persisted verbatim inside the result blob).
const (
	StatusPending   ProcessingStatus = "pending"   // attempt created, no outcome yet
	StatusCompleted ProcessingStatus = "completed" // extraction finished
	StatusFailed    ProcessingStatus = "failed"    // terminal failure for this attempt
)
