package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/hireflow/docscan/constants"
)

// DocumentRecord represents a stored document for data transfer between layers.
type DocumentRecord struct {
	ID           uuid.UUID              `json:"id"`
	FilePath     string                 `json:"file_path"`
	DocumentType constants.DocumentType `json:"document_type"`
	MimeType     string                 `json:"mime_type"`
	UploadedAt   time.Time              `json:"uploaded_at"`
}
