package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/common"
	"github.com/hireflow/docscan/internal/entity"
	"github.com/hireflow/docscan/internal/processor"
)

type stubStore struct {
	docs map[uuid.UUID]entity.DocumentRecord
}

func (s *stubStore) Insert(context.Context, entity.DocumentRecord) error { return nil }

func (s *stubStore) Fetch(_ context.Context, id uuid.UUID) (entity.DocumentRecord, error) {
	doc, ok := s.docs[id]
	if !ok {
		return entity.DocumentRecord{}, common.ErrDocumentNotFound
	}
	return doc, nil
}

func (s *stubStore) SaveResult(context.Context, uuid.UUID, *entity.OCRResult) error { return nil }
func (s *stubStore) Result(context.Context, uuid.UUID) (*entity.OCRResult, error)  { return nil, nil }
func (s *stubStore) Close() error                                                  { return nil }

func TestBatchReportXLSX(t *testing.T) {
	okID := uuid.New()
	failedID := uuid.New()
	store := &stubStore{docs: map[uuid.UUID]entity.DocumentRecord{
		okID: {ID: okID, FilePath: "/uploads/license.png", DocumentType: constants.DocTypeDriversLicense},
	}}

	outcomes := map[uuid.UUID]processor.BatchOutcome{
		okID: {
			Result: &entity.OCRResult{
				ExtractedData:    entity.FieldMap{"licenseNumber": entity.Text("12345678")},
				Confidence:       92,
				ProcessingStatus: constants.StatusCompleted,
			},
		},
		failedID: {
			Result: entity.FailedResult("file not found"),
			Review: true,
			Err:    errors.New("document file not found"),
		},
	}

	svc := NewService(store, nil)
	b, err := svc.BatchReportXLSX(context.Background(), outcomes)
	if err != nil {
		t.Fatalf("BatchReportXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Batch Report")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2 items", len(rows))
	}
	if rows[0][0] != "Document ID" {
		t.Fatalf("header = %q", rows[0][0])
	}

	byID := map[string][]string{}
	for _, r := range rows[1:] {
		byID[r[0]] = r
	}

	ok := byID[okID.String()]
	if ok == nil {
		t.Fatalf("no row for %s", okID)
	}
	if ok[1] != string(constants.DocTypeDriversLicense) || ok[3] != "completed" || ok[4] != "92" {
		t.Fatalf("completed row = %v", ok)
	}
	if ok[5] != "confidence.very_high" {
		t.Fatalf("confidence level = %q", ok[5])
	}

	failed := byID[failedID.String()]
	if failed == nil {
		t.Fatalf("no row for %s", failedID)
	}
	if failed[3] != "failed" || failed[6] != "TRUE" {
		t.Fatalf("failed row = %v", failed)
	}
}
