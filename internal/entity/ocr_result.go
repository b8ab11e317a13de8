package entity

import (
	"time"

	"github.com/hireflow/docscan/constants"
)

// OCRResult is the outcome of one extraction attempt (initial, enhanced
// retry, or manual entry). It is created fresh per attempt and handed back
// to the caller; the document store owns persistence.
//
// Invariants: a failed result has Confidence 0; FieldConfidences keys are
// always a subset of ExtractedData keys.
type OCRResult struct {
	ExtractedData      FieldMap                   `json:"extractedData"`
	Confidence         int                        `json:"confidence"`
	FieldConfidences   map[string]int             `json:"fieldConfidences"`
	RawText            string                     `json:"rawText"`
	ProcessingStatus   constants.ProcessingStatus `json:"processingStatus"`
	ErrorMessage       string                     `json:"errorMessage,omitempty"`
	EnhancedProcessing bool                       `json:"enhancedProcessing,omitempty"`
	Language           constants.Language         `json:"language,omitempty"`
	ManuallyCorrected  bool                       `json:"manuallyCorrected,omitempty"`
	CorrectedAt        *time.Time                 `json:"correctedAt,omitempty"`
	ManualEntryEnabled bool                       `json:"manualEntryEnabled,omitempty"`
	RequiresReview     bool                       `json:"requiresManualReview,omitempty"`
}

// FailedResult builds the uniform failed-status shape carrying the stage
// error message, so batch callers never need a separate failure type.
func FailedResult(msg string) *OCRResult {
	return &OCRResult{
		ExtractedData:    FieldMap{},
		Confidence:       0,
		FieldConfidences: map[string]int{},
		ProcessingStatus: constants.StatusFailed,
		ErrorMessage:     msg,
	}
}

// ValidationResult reports rule failures as data, not errors: a malformed
// extraction is an expected outcome the caller inspects and routes.
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// ComparisonResult is the field-by-field diff of OCR output against a
// manual entry. Differences carry the raw, non-normalized values for
// human review.
type ComparisonResult struct {
	Matches     map[string]bool            `json:"matches"`
	Differences map[string]FieldDifference `json:"differences"`
	Accuracy    float64                    `json:"accuracy"`
}

type FieldDifference struct {
	OCRValue    string `json:"ocrValue"`
	ManualValue string `json:"manualValue"`
}
