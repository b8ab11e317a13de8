package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hireflow/docscan/internal/entity"
)

// Transform converts a raw regex capture into a typed field value.
type Transform func(string) entity.Value

var (
	reNonDigit   = regexp.MustCompile(`\D`)
	reMultiSpace = regexp.MustCompile(`\s+`)
	reDateParts  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})$`)
)

// DigitsOnly strips everything but digits (SSN and USCIS numbers are
// matched with their separators, stored without them).
func DigitsOnly(s string) entity.Value {
	return entity.Number(reNonDigit.ReplaceAllString(s, ""))
}

// Upper trims and upper-cases (state codes, document numbers).
func Upper(s string) entity.Value {
	return entity.Text(strings.ToUpper(strings.TrimSpace(s)))
}

// CleanText collapses runs of whitespace and trims (names, addresses).
func CleanText(s string) entity.Value {
	return entity.Text(strings.TrimSpace(reMultiSpace.ReplaceAllString(s, " ")))
}

// NormalizeDate rewrites matched dates to MM/DD/YYYY. Two-digit years are
// widened on a 1950 pivot. Unparseable input is kept verbatim as text so
// the validator can flag it instead of silently dropping the field.
func NormalizeDate(s string) entity.Value {
	m := reDateParts.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return entity.Text(strings.TrimSpace(s))
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		if year >= 50 {
			year += 1900
		} else {
			year += 2000
		}
	}
	// Spanish documents print DD/MM; swap when the first component cannot
	// be a month but the second can.
	if month > 12 && day <= 12 {
		month, day = day, month
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return entity.Text(strings.TrimSpace(s))
	}
	return entity.Date(fmt.Sprintf("%02d/%02d/%04d", month, day, year))
}
