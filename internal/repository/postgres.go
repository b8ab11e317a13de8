package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireflow/docscan/internal/common"
	"github.com/hireflow/docscan/internal/entity"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS documents (
	id            UUID PRIMARY KEY,
	file_path     TEXT NOT NULL,
	document_type TEXT NOT NULL,
	mime_type     TEXT NOT NULL DEFAULT '',
	uploaded_at   TIMESTAMPTZ NOT NULL,
	ocr_result    JSONB
)`

// PostgresStore backs the document store with a pgx pool.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// OpenPostgres creates the pool, applies pool limits from config, and
// ensures the documents table exists.
func OpenPostgres(ctx context.Context, cfg common.StoreConfig, logger *slog.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "docscan"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	dialCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}
	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	logger.Info("successfully connected to database")
	return &PostgresStore{pool: pool, logger: logger}, nil
}

// HealthCheck pings the pool to catch DSN issues early.
func (s *PostgresStore) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Insert(ctx context.Context, doc entity.DocumentRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO documents (id, file_path, document_type, mime_type, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		doc.ID, doc.FilePath, doc.DocumentType, doc.MimeType, doc.UploadedAt)
	return err
}

func (s *PostgresStore) Fetch(ctx context.Context, id uuid.UUID) (entity.DocumentRecord, error) {
	var doc entity.DocumentRecord
	err := s.pool.QueryRow(ctx,
		`SELECT id, file_path, document_type, mime_type, uploaded_at FROM documents WHERE id = $1`,
		id).Scan(&doc.ID, &doc.FilePath, &doc.DocumentType, &doc.MimeType, &doc.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.DocumentRecord{}, fmt.Errorf("%w: %s", common.ErrDocumentNotFound, id)
	}
	return doc, err
}

func (s *PostgresStore) SaveResult(ctx context.Context, id uuid.UUID, res *entity.OCRResult) error {
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal ocr result: %w", err)
	}
	tag, err := s.pool.Exec(ctx, `UPDATE documents SET ocr_result = $2 WHERE id = $1`, id, b)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", common.ErrDocumentNotFound, id)
	}
	return nil
}

func (s *PostgresStore) Result(ctx context.Context, id uuid.UUID) (*entity.OCRResult, error) {
	var b []byte
	err := s.pool.QueryRow(ctx, `SELECT ocr_result FROM documents WHERE id = $1`, id).Scan(&b)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", common.ErrDocumentNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	var res entity.OCRResult
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, fmt.Errorf("unmarshal ocr result: %w", err)
	}
	return &res, nil
}

// Close closes the pool gracefully.
func (s *PostgresStore) Close() error {
	s.logger.Info("closing database connections")
	s.pool.Close()
	return nil
}
