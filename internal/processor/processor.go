// Package processor owns the per-document workflow: preprocess, OCR,
// extract, score, plus the enhanced retry, batch, and manual-entry paths.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/catalog"
	"github.com/hireflow/docscan/internal/common"
	"github.com/hireflow/docscan/internal/entity"
	"github.com/hireflow/docscan/internal/extract"
	"github.com/hireflow/docscan/internal/language"
	"github.com/hireflow/docscan/internal/ocr"
	"github.com/hireflow/docscan/internal/preprocess"
	"github.com/hireflow/docscan/internal/repository"
	"github.com/hireflow/docscan/internal/score"
)

// Preprocessor is Stage 1: source image -> OCR-ready scratch image.
type Preprocessor interface {
	Process(srcPath string, profile preprocess.Profile) (string, error)
}

// OCRClient is Stage 2: scratch image -> raw text plus engine confidence.
type OCRClient interface {
	DetectionPass(ctx context.Context, imagePath string) (ocr.Result, error)
	FullPass(ctx context.Context, imagePath string, lang constants.Language, docType constants.DocumentType) (ocr.Result, error)
	EnhancedPass(ctx context.Context, imagePath string, lang constants.Language) (ocr.Result, error)
}

// Review-routing thresholds: the overall check catches globally bad
// captures, the per-field check catches a single critical field extracted
// unreliably even when the average looks fine.
const (
	reviewOverallThreshold = 70
	reviewFieldThreshold   = 60
)

type Processor struct {
	store       repository.DocumentStore
	pre         Preprocessor
	ocr         OCRClient
	extractor   *extract.Extractor
	workers     int
	timeout     time.Duration
	defaultLang constants.Language
	logger      *slog.Logger
}

type Option func(*Processor)

// WithLanguage pins the extraction language for store-driven processing,
// skipping the detection pre-pass.
func WithLanguage(lang constants.Language) Option {
	return func(p *Processor) {
		p.defaultLang = lang
	}
}

func New(store repository.DocumentStore, pre Preprocessor, ocrClient OCRClient, cfg common.PipelineConfig, logger *slog.Logger, opts ...Option) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.BatchWorkers
	if workers <= 0 {
		workers = 4
	}
	timeout := cfg.ItemTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	p := &Processor{
		store:     store,
		pre:       pre,
		ocr:       ocrClient,
		extractor: extract.NewExtractor(logger),
		workers:   workers,
		timeout:   timeout,
		logger:    logger,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ProcessDocument runs the primary pipeline for a stored document and
// persists the outcome. Pre-flight problems (unknown document, unsupported
// type, missing file) are returned as errors; stage failures come back as a
// failed-status result.
func (p *Processor) ProcessDocument(ctx context.Context, id uuid.UUID) (*entity.OCRResult, error) {
	doc, err := p.store.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := p.ProcessFile(ctx, doc.FilePath, doc.DocumentType, p.defaultLang)
	if err != nil {
		return nil, err
	}
	if err := p.store.SaveResult(ctx, id, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ProcessFile runs the primary pipeline on a local image. An empty lang
// triggers the detection pre-pass.
func (p *Processor) ProcessFile(ctx context.Context, filePath string, docType constants.DocumentType, lang constants.Language) (*entity.OCRResult, error) {
	if err := p.preflight(filePath, docType); err != nil {
		return nil, err
	}
	return p.run(ctx, filePath, docType, lang, preprocess.ProfileFor(docType), false), nil
}

func (p *Processor) preflight(filePath string, docType constants.DocumentType) error {
	if !constants.IsOCRSupported(docType) {
		return fmt.Errorf("%w: %s", common.ErrUnsupportedDocumentType, docType)
	}
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("%w: %s", common.ErrDocumentFileNotFound, filePath)
	}
	return nil
}

// run executes preprocess -> OCR -> extract -> score. Stage errors are
// converted into a failed result so every top-level call returns the
// uniform result shape.
func (p *Processor) run(ctx context.Context, filePath string, docType constants.DocumentType, lang constants.Language, profile preprocess.Profile, enhanced bool) *entity.OCRResult {
	if metrics, err := preprocess.AssessQuality(filePath); err == nil && metrics.EstimatedQuality == preprocess.QualityLow {
		p.logger.Warn("processor.quality.low", "path", filePath, "recommendations", metrics.Recommendations)
	}

	scratch, err := p.pre.Process(filePath, profile)
	if err != nil {
		p.logger.Error("processor.preprocess.failed", "path", filePath, "error", err)
		return p.failed(err, enhanced)
	}
	// Scratch images are consumed by OCR and then deleted on every path.
	defer func() {
		if rmErr := os.Remove(scratch); rmErr != nil {
			p.logger.Warn("processor.scratch.remove_failed", "path", scratch, "error", rmErr)
		}
	}()

	if lang == "" {
		lang = p.detectLanguage(ctx, scratch)
	}

	var ocrRes ocr.Result
	if enhanced {
		ocrRes, err = p.ocr.EnhancedPass(ctx, scratch, lang)
	} else {
		ocrRes, err = p.ocr.FullPass(ctx, scratch, lang, docType)
	}
	if err != nil {
		p.logger.Error("processor.ocr.failed", "path", filePath, "error", err)
		return p.failed(err, enhanced)
	}

	fields := p.extractor.Fields(ocrRes.Text, docType, lang)
	res := &entity.OCRResult{
		ExtractedData:      fields,
		Confidence:         clampScore(ocrRes.Confidence),
		FieldConfidences:   score.FieldConfidences(fields, ocrRes.Confidence),
		RawText:            ocrRes.Text,
		ProcessingStatus:   constants.StatusCompleted,
		Language:           lang,
		EnhancedProcessing: enhanced,
	}
	p.logger.Info("processor.ocr.ok",
		"path", filePath,
		"doc_type", docType,
		"lang", lang,
		"confidence", res.Confidence,
		"fields", len(fields),
		"enhanced", enhanced,
	)
	return res
}

// detectLanguage runs the fast English pre-pass and scores its text against
// both keyword lists. Any failure falls back to the default language; the
// full pass will still report its own error if the engine is truly down.
func (p *Processor) detectLanguage(ctx context.Context, scratch string) constants.Language {
	det, err := p.ocr.DetectionPass(ctx, scratch)
	if err != nil {
		p.logger.Warn("processor.language_detection.failed", "error", err)
		return constants.DefaultLanguage
	}
	lang := language.Detect(det.Text)
	p.logger.Debug("processor.language_detection.ok", "lang", lang)
	return lang
}

func (p *Processor) failed(err error, enhanced bool) *entity.OCRResult {
	res := entity.FailedResult(err.Error())
	res.EnhancedProcessing = enhanced
	return res
}

func clampScore(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return int(math.Round(v))
}

// RequiresManualReview combines the coarse and fine confidence signals used
// to route a document to a human.
func RequiresManualReview(res *entity.OCRResult) bool {
	if res == nil {
		return true
	}
	if res.ProcessingStatus != constants.StatusCompleted || res.Confidence < reviewOverallThreshold {
		return true
	}
	for _, c := range res.FieldConfidences {
		if c < reviewFieldThreshold {
			return true
		}
	}
	return false
}

// ConfidenceMessageKey maps a score to the translation key shown next to it.
func ConfidenceMessageKey(confidence int) string {
	switch {
	case confidence >= 90:
		return "confidence.very_high"
	case confidence >= 75:
		return "confidence.high"
	case confidence >= 60:
		return "confidence.medium"
	case confidence >= 40:
		return "confidence.low"
	default:
		return "confidence.very_low"
	}
}

// FieldTemplates exposes the static manual-entry templates for callers
// building forms.
func (p *Processor) FieldTemplates(docType constants.DocumentType) ([]catalog.FieldTemplate, error) {
	if !constants.IsOCRSupported(docType) {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedDocumentType, docType)
	}
	return catalog.TemplatesFor(docType), nil
}
