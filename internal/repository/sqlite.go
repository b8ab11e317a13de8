package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hireflow/docscan/internal/common"
	"github.com/hireflow/docscan/internal/entity"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	id            TEXT PRIMARY KEY,
	file_path     TEXT NOT NULL,
	document_type TEXT NOT NULL,
	mime_type     TEXT NOT NULL DEFAULT '',
	uploaded_at   TIMESTAMP NOT NULL,
	ocr_result    TEXT
)`

// SQLiteStore backs the document store with a local SQLite file, or an
// in-memory database for tools and tests (dsn ":memory:").
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func OpenSQLite(ctx context.Context, dsn string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// In-memory databases live per connection; a single connection keeps
	// every statement on the same database.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	logger.Debug("sqlite store opened", "dsn", dsn)
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, doc entity.DocumentRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, file_path, document_type, mime_type, uploaded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		doc.ID.String(), doc.FilePath, string(doc.DocumentType), doc.MimeType, doc.UploadedAt)
	return err
}

func (s *SQLiteStore) Fetch(ctx context.Context, id uuid.UUID) (entity.DocumentRecord, error) {
	var (
		doc   entity.DocumentRecord
		idStr string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, file_path, document_type, mime_type, uploaded_at FROM documents WHERE id = ?`,
		id.String()).Scan(&idStr, &doc.FilePath, &doc.DocumentType, &doc.MimeType, &doc.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.DocumentRecord{}, fmt.Errorf("%w: %s", common.ErrDocumentNotFound, id)
	}
	if err != nil {
		return entity.DocumentRecord{}, err
	}
	doc.ID, err = uuid.Parse(idStr)
	return doc, err
}

func (s *SQLiteStore) SaveResult(ctx context.Context, id uuid.UUID, res *entity.OCRResult) error {
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal ocr result: %w", err)
	}
	r, err := s.db.ExecContext(ctx, `UPDATE documents SET ocr_result = ? WHERE id = ?`, string(b), id.String())
	if err != nil {
		return err
	}
	n, err := r.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", common.ErrDocumentNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) Result(ctx context.Context, id uuid.UUID) (*entity.OCRResult, error) {
	var b sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT ocr_result FROM documents WHERE id = ?`, id.String()).Scan(&b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", common.ErrDocumentNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if !b.Valid || b.String == "" {
		return nil, nil
	}
	var res entity.OCRResult
	if err := json.Unmarshal([]byte(b.String), &res); err != nil {
		return nil, fmt.Errorf("unmarshal ocr result: %w", err)
	}
	return &res, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
