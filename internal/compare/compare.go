// Package compare diffs OCR output against a manual entry, ignoring
// cosmetic OCR noise.
package compare

import (
	"math"
	"regexp"
	"strings"

	"github.com/hireflow/docscan/internal/entity"
)

var (
	rePunct      = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Normalize lowercases, strips punctuation, and collapses whitespace so
// "JOHN DOE." and "John Doe" compare equal.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = rePunct.ReplaceAllString(s, "")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Fields compares two field maps over the union of their keys. Matches are
// decided on normalized values; differences carry the raw values for human
// review. Accuracy is the percentage of matching fields.
func Fields(ocr, manual entity.FieldMap) entity.ComparisonResult {
	union := make(map[string]struct{}, len(ocr)+len(manual))
	for k := range ocr {
		union[k] = struct{}{}
	}
	for k := range manual {
		union[k] = struct{}{}
	}

	res := entity.ComparisonResult{
		Matches:     make(map[string]bool, len(union)),
		Differences: make(map[string]entity.FieldDifference),
	}
	if len(union) == 0 {
		res.Accuracy = 100
		return res
	}

	matched := 0
	for field := range union {
		o := ocr[field]
		m := manual[field]
		if Normalize(o.Raw) == Normalize(m.Raw) {
			res.Matches[field] = true
			matched++
			continue
		}
		res.Matches[field] = false
		res.Differences[field] = entity.FieldDifference{
			OCRValue:    o.Raw,
			ManualValue: m.Raw,
		}
	}
	res.Accuracy = math.Round(float64(matched)/float64(len(union))*10000) / 100
	return res
}
