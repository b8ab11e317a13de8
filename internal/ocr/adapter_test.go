package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/common"
)

type fakeEngine struct {
	lastReq Request
	result  Result
	err     error
}

func (f *fakeEngine) Recognize(_ context.Context, req Request) (Result, error) {
	f.lastReq = req
	return f.result, f.err
}

func TestDetectionPassConfig(t *testing.T) {
	fe := &fakeEngine{result: Result{Text: "DRIVER LICENSE"}}
	a := NewAdapter(fe, nil)

	res, err := a.DetectionPass(context.Background(), "in.png")
	if err != nil {
		t.Fatalf("DetectionPass() error = %v", err)
	}
	if res.Text != "DRIVER LICENSE" {
		t.Fatalf("unexpected text: %q", res.Text)
	}
	if fe.lastReq.Language != constants.LangEnglish {
		t.Fatalf("detection pass language = %q, want en", fe.lastReq.Language)
	}
	if fe.lastReq.SegMode != SegAuto {
		t.Fatalf("detection pass seg mode = %d, want SegAuto", fe.lastReq.SegMode)
	}
	if fe.lastReq.Mode != ModeFast {
		t.Fatal("detection pass should use the fast engine mode")
	}
}

func TestFullPassSegModePerDocType(t *testing.T) {
	tests := []struct {
		docType constants.DocumentType
		want    SegMode
	}{
		{constants.DocTypeDriversLicense, SegSingleBlock},
		{constants.DocTypeSSN, SegSingleBlock},
		{constants.DocTypePassport, SegAuto},
	}
	for _, tt := range tests {
		fe := &fakeEngine{result: Result{Text: "x", Confidence: 80}}
		a := NewAdapter(fe, nil)
		if _, err := a.FullPass(context.Background(), "in.png", constants.LangSpanish, tt.docType); err != nil {
			t.Fatalf("FullPass(%s) error = %v", tt.docType, err)
		}
		if fe.lastReq.SegMode != tt.want {
			t.Fatalf("FullPass(%s) seg mode = %d, want %d", tt.docType, fe.lastReq.SegMode, tt.want)
		}
		if fe.lastReq.Language != constants.LangSpanish {
			t.Fatalf("FullPass(%s) language = %q, want es", tt.docType, fe.lastReq.Language)
		}
	}
}

func TestEnhancedPassUsesSparseSegmentation(t *testing.T) {
	fe := &fakeEngine{result: Result{Text: "x", Confidence: 55}}
	a := NewAdapter(fe, nil)
	if _, err := a.EnhancedPass(context.Background(), "in.png", constants.LangEnglish); err != nil {
		t.Fatalf("EnhancedPass() error = %v", err)
	}
	if fe.lastReq.SegMode != SegSparse {
		t.Fatalf("enhanced pass seg mode = %d, want SegSparse", fe.lastReq.SegMode)
	}
}

func TestPassErrorsWrapOCRProcessing(t *testing.T) {
	fe := &fakeEngine{err: errors.New("engine crashed")}
	a := NewAdapter(fe, nil)
	if _, err := a.FullPass(context.Background(), "in.png", constants.LangEnglish, constants.DocTypeSSN); !errors.Is(err, common.ErrOCRProcessing) {
		t.Fatalf("error = %v, want ErrOCRProcessing", err)
	}
	if _, err := a.DetectionPass(context.Background(), "in.png"); !errors.Is(err, common.ErrOCRProcessing) {
		t.Fatalf("error = %v, want ErrOCRProcessing", err)
	}
}
