// Package validate re-checks extracted values against format, length, and
// date-logic rules. Failures are data (translation keys per field), not
// errors: a malformed extraction is an expected outcome the caller routes.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/catalog"
	"github.com/hireflow/docscan/internal/entity"
)

const (
	minNameLen    = 2
	minAddressLen = 5
	maxFieldLen   = 100

	minAgeYears = 16
	maxAgeYears = 120
)

// now is swapped in tests to pin expiry and age checks.
var now = time.Now

// ExtractedData validates an OCR result's fields. Rules are independent per
// field; IsValid is true iff no errors were recorded. A result that never
// completed is invalid with a single general error.
func ExtractedData(res *entity.OCRResult) entity.ValidationResult {
	errs := map[string]string{}

	if res == nil || res.ProcessingStatus != constants.StatusCompleted {
		errs["general"] = "validation.processing_incomplete"
		return entity.ValidationResult{IsValid: false, Errors: errs}
	}

	for field, value := range res.ExtractedData {
		if value.Empty() {
			continue
		}
		if key := checkField(field, value); key != "" {
			errs[field] = key
		}
	}

	return entity.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func checkField(field string, value entity.Value) string {
	v := value.Raw

	if len(v) > maxFieldLen {
		return "validation.too_long"
	}
	switch field {
	case "fullName":
		if len(v) < minNameLen {
			return "validation.too_short"
		}
	case "address":
		if len(v) < minAddressLen {
			return "validation.too_short"
		}
	}

	if vp, ok := catalog.ValidationPatternFor(field); ok && !vp.Pattern.MatchString(v) {
		return vp.ErrorKey
	}

	switch field {
	case "state":
		if !catalog.IsUSState(v) {
			return "validation.state_code"
		}
	case "dateOfBirth":
		return checkDateOfBirth(v)
	case "expirationDate":
		return checkExpiration(v)
	}
	return ""
}

// parseStrictDate rejects calendar-invalid dates that time.Parse would
// normalize away (02/30 feeding through as 03/02).
func parseStrictDate(v string) (time.Time, bool) {
	parts := strings.Split(v, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(parts[0])
	day, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if fmt.Sprintf("%02d/%02d/%04d", d.Month(), d.Day(), d.Year()) != v {
		return time.Time{}, false
	}
	return d, true
}

func checkDateOfBirth(v string) string {
	d, ok := parseStrictDate(v)
	if !ok {
		return "validation.date_format"
	}
	age := yearsBetween(d, now())
	if age < minAgeYears || age > maxAgeYears {
		return "validation.age_range"
	}
	return ""
}

func checkExpiration(v string) string {
	d, ok := parseStrictDate(v)
	if !ok {
		return "validation.date_format"
	}
	if d.Before(now().UTC().Truncate(24 * time.Hour)) {
		return "validation.document_expired"
	}
	return ""
}

func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}
