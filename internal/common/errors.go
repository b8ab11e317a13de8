package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Typed pipeline errors. Pre-flight kinds (unsupported type, missing
// document or file) propagate to callers; stage kinds (preprocessing, OCR)
// are converted by the processor into failed-status results.
var (
	ErrUnsupportedDocumentType = errors.New("document type not supported for OCR")
	ErrDocumentNotFound        = errors.New("document not found")
	ErrDocumentFileNotFound    = errors.New("document file not found")
	ErrImagePreprocessing      = errors.New("image preprocessing failed")
	ErrOCRProcessing           = errors.New("ocr processing failed")
	ErrNoOCRData               = errors.New("no ocr data to correct")
	ErrInvalidInput            = errors.New("invalid input")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
