// Package export produces XLSX batch reports for review workflows.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hireflow/docscan/internal/processor"
	"github.com/hireflow/docscan/internal/repository"
)

// Service turns batch outcomes into an XLSX workbook for reviewers.
type Service struct {
	store  repository.DocumentStore
	logger *slog.Logger
}

func NewService(store repository.DocumentStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// BatchReportXLSX returns an XLSX workbook (as bytes) summarizing one batch
// run: one row per document with its extraction status, confidence, and
// review routing. Rows are ordered by document id for a stable report.
func (s *Service) BatchReportXLSX(ctx context.Context, outcomes map[uuid.UUID]processor.BatchOutcome) ([]byte, error) {
	start := time.Now()

	ids := make([]uuid.UUID, 0, len(outcomes))
	for id := range outcomes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	f := excelize.NewFile()
	const sheet = "Batch Report"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	defaultSheet := f.GetSheetName(0)
	if defaultSheet != sheet {
		_ = f.DeleteSheet(defaultSheet)
	}

	headers := []string{
		"Document ID",
		"Document Type",
		"File Path",
		"Status",
		"Confidence",
		"Confidence Level",
		"Needs Review",
		"Fields Extracted",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, id := range ids {
		out := outcomes[id]

		docType, filePath := "", ""
		if doc, err := s.store.Fetch(ctx, id); err == nil {
			docType = string(doc.DocumentType)
			filePath = doc.FilePath
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, id.String())
		write(2, docType)
		write(3, filePath)

		errMsg := ""
		if out.Err != nil {
			errMsg = out.Err.Error()
		}
		if out.Result != nil {
			write(4, string(out.Result.ProcessingStatus))
			write(5, out.Result.Confidence)
			write(6, processor.ConfidenceMessageKey(out.Result.Confidence))
			write(8, len(out.Result.ExtractedData))
			if errMsg == "" {
				errMsg = out.Result.ErrorMessage
			}
		}
		write(7, out.Review)
		write(9, truncate(errMsg, 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // document id
	_ = f.SetColWidth(sheet, "B", "B", 20) // type
	_ = f.SetColWidth(sheet, "C", "C", 48) // path
	_ = f.SetColWidth(sheet, "D", "D", 12) // status
	_ = f.SetColWidth(sheet, "E", "F", 16) // confidence
	_ = f.SetColWidth(sheet, "G", "H", 14) // review, field count
	_ = f.SetColWidth(sheet, "I", "I", 48) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(ids),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
