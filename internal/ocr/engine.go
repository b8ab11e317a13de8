// Package ocr wraps the recognition engine behind a small interface and
// owns the pass configuration (language, segmentation) per document type.
package ocr

import (
	"context"

	"github.com/hireflow/docscan/constants"
)

// SegMode selects the page segmentation strategy for a pass.
type SegMode int

const (
	SegAuto        SegMode = 3  // automatic layout analysis
	SegSingleBlock SegMode = 6  // one uniform block of text
	SegSparse      SegMode = 11 // find as much text as possible, no order
)

// EngineMode trades accuracy for speed. The fast mode exists only for the
// language-detection pre-pass.
type EngineMode int

const (
	ModeAccurate EngineMode = iota
	ModeFast
)

// Request configures one engine invocation.
type Request struct {
	ImagePath string
	Language  constants.Language
	SegMode   SegMode
	Mode      EngineMode
}

// Result carries the raw recognized text and the engine's overall
// confidence on a 0-100 scale.
type Result struct {
	Text       string
	Confidence float64
}

// Engine is the underlying OCR engine, treated as a black box. An
// implementation must scope its engine handle to the invocation and release
// it on every exit path.
type Engine interface {
	Recognize(ctx context.Context, req Request) (Result, error)
}
