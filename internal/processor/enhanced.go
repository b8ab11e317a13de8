package processor

import (
	"context"

	"github.com/google/uuid"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/entity"
	"github.com/hireflow/docscan/internal/preprocess"
)

// ProcessFileEnhanced runs the retry pipeline: aggressive preprocessing and
// the sparse-text OCR pass. Used when the primary pass came back weak.
func (p *Processor) ProcessFileEnhanced(ctx context.Context, filePath string, docType constants.DocumentType, lang constants.Language) (*entity.OCRResult, error) {
	if err := p.preflight(filePath, docType); err != nil {
		return nil, err
	}
	return p.run(ctx, filePath, docType, lang, preprocess.EnhancedProfile, true), nil
}

// ProcessDocumentEnhanced retries a stored document with the enhanced
// pipeline and keeps whichever attempt scored higher. The retry is not
// allowed to make things worse: a prior completed result only gets replaced
// by a completed result with strictly higher confidence.
func (p *Processor) ProcessDocumentEnhanced(ctx context.Context, id uuid.UUID) (*entity.OCRResult, error) {
	doc, err := p.store.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	prior, err := p.store.Result(ctx, id)
	if err != nil {
		return nil, err
	}

	lang := p.defaultLang
	if prior != nil && prior.Language != "" {
		lang = prior.Language
	}
	retry, err := p.ProcessFileEnhanced(ctx, doc.FilePath, doc.DocumentType, lang)
	if err != nil {
		return nil, err
	}

	winner := pickBetter(prior, retry)
	p.logger.Info("processor.enhanced.done",
		"document_id", id,
		"prior_confidence", confidenceOf(prior),
		"retry_confidence", retry.Confidence,
		"kept_enhanced", winner == retry,
	)
	if err := p.store.SaveResult(ctx, id, winner); err != nil {
		return nil, err
	}
	return winner, nil
}

func pickBetter(prior, retry *entity.OCRResult) *entity.OCRResult {
	if prior == nil || prior.ProcessingStatus != constants.StatusCompleted {
		return retry
	}
	if retry.ProcessingStatus != constants.StatusCompleted {
		return prior
	}
	if retry.Confidence > prior.Confidence {
		return retry
	}
	return prior
}

func confidenceOf(res *entity.OCRResult) int {
	if res == nil {
		return 0
	}
	return res.Confidence
}
