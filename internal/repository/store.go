// Package repository implements the document store collaborator: documents
// keyed by id with an opaque OCR-result blob the pipeline reads and updates.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hireflow/docscan/internal/entity"
)

// DocumentStore is what the processor needs from persistence. Result
// returns (nil, nil) when the document exists but has no stored OCR result
// yet; a missing document is ErrDocumentNotFound.
type DocumentStore interface {
	Insert(ctx context.Context, doc entity.DocumentRecord) error
	Fetch(ctx context.Context, id uuid.UUID) (entity.DocumentRecord, error)
	SaveResult(ctx context.Context, id uuid.UUID, res *entity.OCRResult) error
	Result(ctx context.Context, id uuid.UUID) (*entity.OCRResult, error)
	Close() error
}
