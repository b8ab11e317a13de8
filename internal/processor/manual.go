package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/common"
	"github.com/hireflow/docscan/internal/compare"
	"github.com/hireflow/docscan/internal/entity"
	"github.com/hireflow/docscan/internal/forms"
)

// manualRawText marks a result as typed in rather than recognized.
const manualRawText = "Manual entry"

var now = time.Now

// EnableManualEntry flags a document for manual data entry. When no OCR
// attempt exists yet, a pending placeholder result is created so the flag
// has somewhere to live.
func (p *Processor) EnableManualEntry(ctx context.Context, id uuid.UUID) (*entity.OCRResult, error) {
	res, err := p.store.Result(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = &entity.OCRResult{
			ExtractedData:    entity.FieldMap{},
			FieldConfidences: map[string]int{},
			ProcessingStatus: constants.StatusPending,
		}
	}
	res.ManualEntryEnabled = true
	if err := p.store.SaveResult(ctx, id, res); err != nil {
		return nil, err
	}
	p.logger.Info("processor.manual.enabled", "document_id", id)
	return res, nil
}

// SaveManualEntry validates a typed-in field set against the document
// type's schema and stores it as a completed result. Human input is trusted
// fully, so every confidence is 100.
func (p *Processor) SaveManualEntry(ctx context.Context, id uuid.UUID, fields map[string]string) (*entity.OCRResult, error) {
	doc, err := p.store.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := forms.ValidateManualEntry(doc.DocumentType, fields); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	confidences := make(map[string]int, len(fields))
	for field := range fields {
		confidences[field] = 100
	}
	res := &entity.OCRResult{
		ExtractedData:      entity.FieldMapFromStrings(fields),
		Confidence:         100,
		FieldConfidences:   confidences,
		RawText:            manualRawText,
		ProcessingStatus:   constants.StatusCompleted,
		ManualEntryEnabled: true,
	}
	if err := p.store.SaveResult(ctx, id, res); err != nil {
		return nil, err
	}
	p.logger.Info("processor.manual.saved", "document_id", id, "fields", len(fields))
	return res, nil
}

// CorrectOCRData merges human corrections into the stored result. The
// caller's values win; corrected fields become fully trusted. Errors with
// ErrNoOCRData when there is no prior attempt to correct.
func (p *Processor) CorrectOCRData(ctx context.Context, id uuid.UUID, corrections map[string]string) (*entity.OCRResult, error) {
	res, err := p.store.Result(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: document %s", common.ErrNoOCRData, id)
	}

	if res.ExtractedData == nil {
		res.ExtractedData = entity.FieldMap{}
	}
	if res.FieldConfidences == nil {
		res.FieldConfidences = map[string]int{}
	}
	for field, value := range corrections {
		res.ExtractedData[field] = entity.InferValue(value)
		res.FieldConfidences[field] = 100
	}
	res.ManuallyCorrected = true
	ts := now().UTC()
	res.CorrectedAt = &ts

	if err := p.store.SaveResult(ctx, id, res); err != nil {
		return nil, err
	}
	p.logger.Info("processor.manual.corrected", "document_id", id, "fields", len(corrections))
	return res, nil
}

// CompareOCRWithManualEntry diffs the stored OCR result against a manual
// field set. Errors with ErrNoOCRData when no OCR attempt exists.
func (p *Processor) CompareOCRWithManualEntry(ctx context.Context, id uuid.UUID, manual map[string]string) (*entity.ComparisonResult, error) {
	res, err := p.store.Result(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: document %s", common.ErrNoOCRData, id)
	}
	cmp := compare.Fields(res.ExtractedData, entity.FieldMapFromStrings(manual))
	return &cmp, nil
}
