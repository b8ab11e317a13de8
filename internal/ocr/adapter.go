package ocr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/common"
)

// segModes maps each document type to the layout its full pass expects.
// Card-sized documents read best as one uniform block; passport data pages
// mix machine-readable zones with labels and need automatic analysis.
var segModes = map[constants.DocumentType]SegMode{
	constants.DocTypeDriversLicense:    SegSingleBlock,
	constants.DocTypeStateID:           SegSingleBlock,
	constants.DocTypeWorkAuthorization: SegSingleBlock,
	constants.DocTypeSSN:               SegSingleBlock,
	constants.DocTypePassport:          SegAuto,
}

// Adapter drives the engine with the right configuration per pass kind.
type Adapter struct {
	engine Engine
	logger *slog.Logger
}

func NewAdapter(engine Engine, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{engine: engine, logger: logger}
}

// DetectionPass is the fast English pre-pass used only to feed the language
// detector when the caller supplies no language.
func (a *Adapter) DetectionPass(ctx context.Context, imagePath string) (Result, error) {
	res, err := a.engine.Recognize(ctx, Request{
		ImagePath: imagePath,
		Language:  constants.LangEnglish,
		SegMode:   SegAuto,
		Mode:      ModeFast,
	})
	if err != nil {
		a.logger.Error("ocr.detection_pass.failed", "path", imagePath, "error", err)
		return Result{}, fmt.Errorf("%w: detection pass: %v", common.ErrOCRProcessing, err)
	}
	return res, nil
}

// FullPass is the real extraction pass: language-specific, segmentation
// tuned to the document type's layout.
func (a *Adapter) FullPass(ctx context.Context, imagePath string, lang constants.Language, docType constants.DocumentType) (Result, error) {
	res, err := a.engine.Recognize(ctx, Request{
		ImagePath: imagePath,
		Language:  lang,
		SegMode:   segModeFor(docType),
		Mode:      ModeAccurate,
	})
	if err != nil {
		a.logger.Error("ocr.full_pass.failed", "path", imagePath, "lang", lang, "error", err)
		return Result{}, fmt.Errorf("%w: full pass: %v", common.ErrOCRProcessing, err)
	}
	a.logger.Debug("ocr.full_pass.ok", "path", imagePath, "lang", lang, "confidence", res.Confidence)
	return res, nil
}

// EnhancedPass pairs with the enhanced preprocessing profile: sparse-text
// segmentation recovers fragments that block segmentation drops on noisy
// captures.
func (a *Adapter) EnhancedPass(ctx context.Context, imagePath string, lang constants.Language) (Result, error) {
	res, err := a.engine.Recognize(ctx, Request{
		ImagePath: imagePath,
		Language:  lang,
		SegMode:   SegSparse,
		Mode:      ModeAccurate,
	})
	if err != nil {
		a.logger.Error("ocr.enhanced_pass.failed", "path", imagePath, "lang", lang, "error", err)
		return Result{}, fmt.Errorf("%w: enhanced pass: %v", common.ErrOCRProcessing, err)
	}
	return res, nil
}

func segModeFor(t constants.DocumentType) SegMode {
	if m, ok := segModes[t]; ok {
		return m
	}
	return SegAuto
}
