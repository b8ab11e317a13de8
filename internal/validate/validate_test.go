package validate

import (
	"reflect"
	"testing"
	"time"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/entity"
)

func pinNow(t *testing.T, v time.Time) {
	t.Helper()
	old := now
	now = func() time.Time { return v }
	t.Cleanup(func() { now = old })
}

func completedResult(fields entity.FieldMap) *entity.OCRResult {
	return &entity.OCRResult{
		ExtractedData:    fields,
		ProcessingStatus: constants.StatusCompleted,
	}
}

func TestValidSSNResult(t *testing.T) {
	res := completedResult(entity.FieldMap{
		"ssnNumber": entity.Number("123456789"),
		"fullName":  entity.Text("John Doe"),
	})
	got := ExtractedData(res)
	if !got.IsValid {
		t.Fatalf("expected valid, got errors %v", got.Errors)
	}
	if len(got.Errors) != 0 {
		t.Fatalf("errors = %v, want empty", got.Errors)
	}
}

func TestSSNWithDashesFailsFormat(t *testing.T) {
	res := completedResult(entity.FieldMap{"ssnNumber": entity.Text("123-45-6789")})
	got := ExtractedData(res)
	if got.IsValid {
		t.Fatal("expected invalid")
	}
	if got.Errors["ssnNumber"] != "validation.ssn_format" {
		t.Fatalf("ssnNumber error = %q, want validation.ssn_format", got.Errors["ssnNumber"])
	}
}

func TestIncompleteResultIsGenerallyInvalid(t *testing.T) {
	res := &entity.OCRResult{ProcessingStatus: constants.StatusFailed}
	got := ExtractedData(res)
	if got.IsValid {
		t.Fatal("expected invalid")
	}
	if got.Errors["general"] != "validation.processing_incomplete" {
		t.Fatalf("general error = %q", got.Errors["general"])
	}
	if len(got.Errors) != 1 {
		t.Fatalf("errors = %v, want single general entry", got.Errors)
	}
}

func TestLengthRules(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	tests := []struct {
		name   string
		fields entity.FieldMap
		field  string
		want   string
	}{
		{"short name", entity.FieldMap{"fullName": entity.Text("J")}, "fullName", "validation.too_short"},
		{"short address", entity.FieldMap{"address": entity.Text("1 st")}, "address", "validation.too_short"},
		{"overlong field", entity.FieldMap{"fullName": entity.Text(string(long))}, "fullName", "validation.too_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractedData(completedResult(tt.fields))
			if got.Errors[tt.field] != tt.want {
				t.Fatalf("%s error = %q, want %q", tt.field, got.Errors[tt.field], tt.want)
			}
		})
	}
}

func TestImpossibleDateRejected(t *testing.T) {
	// 02/30 would round-trip as 03/02.
	res := completedResult(entity.FieldMap{"dateOfBirth": entity.Date("02/30/1990")})
	got := ExtractedData(res)
	if got.Errors["dateOfBirth"] != "validation.date_format" {
		t.Fatalf("dateOfBirth error = %q, want validation.date_format", got.Errors["dateOfBirth"])
	}
}

func TestAgeRange(t *testing.T) {
	pinNow(t, time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))

	tooYoung := completedResult(entity.FieldMap{"dateOfBirth": entity.Date("01/15/2015")})
	if got := ExtractedData(tooYoung); got.Errors["dateOfBirth"] != "validation.age_range" {
		t.Fatalf("minor dateOfBirth error = %q, want validation.age_range", got.Errors["dateOfBirth"])
	}

	adult := completedResult(entity.FieldMap{"dateOfBirth": entity.Date("01/15/1990")})
	if got := ExtractedData(adult); !got.IsValid {
		t.Fatalf("adult dateOfBirth flagged: %v", got.Errors)
	}

	ancient := completedResult(entity.FieldMap{"dateOfBirth": entity.Date("01/15/1880")})
	if got := ExtractedData(ancient); got.Errors["dateOfBirth"] != "validation.age_range" {
		t.Fatalf("ancient dateOfBirth error = %q, want validation.age_range", got.Errors["dateOfBirth"])
	}
}

func TestExpiredDocumentFlagged(t *testing.T) {
	pinNow(t, time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))

	expired := completedResult(entity.FieldMap{"expirationDate": entity.Date("01/15/2020")})
	if got := ExtractedData(expired); got.Errors["expirationDate"] != "validation.document_expired" {
		t.Fatalf("expirationDate error = %q, want validation.document_expired", got.Errors["expirationDate"])
	}

	current := completedResult(entity.FieldMap{"expirationDate": entity.Date("01/15/2030")})
	if got := ExtractedData(current); !got.IsValid {
		t.Fatalf("future expiration flagged: %v", got.Errors)
	}
}

func TestStateCodeMembership(t *testing.T) {
	bad := completedResult(entity.FieldMap{"state": entity.Text("ZZ")})
	if got := ExtractedData(bad); got.Errors["state"] != "validation.state_code" {
		t.Fatalf("state error = %q, want validation.state_code", got.Errors["state"])
	}
	good := completedResult(entity.FieldMap{"state": entity.Text("TX")})
	if got := ExtractedData(good); !got.IsValid {
		t.Fatalf("TX flagged: %v", got.Errors)
	}
}

func TestEmptyValuesAreSkipped(t *testing.T) {
	// Required-but-missing fields arrive as "", absence is not a format error.
	res := completedResult(entity.FieldMap{"ssnNumber": entity.Text("")})
	if got := ExtractedData(res); !got.IsValid {
		t.Fatalf("empty value flagged: %v", got.Errors)
	}
}

func TestValidationIsIdempotent(t *testing.T) {
	res := completedResult(entity.FieldMap{
		"ssnNumber": entity.Number("123456789"),
		"fullName":  entity.Text("John Doe"),
	})
	first := ExtractedData(res)
	second := ExtractedData(res)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation not idempotent: %v vs %v", first, second)
	}
}
