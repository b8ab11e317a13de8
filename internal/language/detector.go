// Package language picks the extraction language for a raw OCR text when
// the caller supplies no hint.
package language

import (
	"regexp"
	"strings"

	"github.com/hireflow/docscan/constants"
)

var englishKeywords = []string{
	"license", "name", "date of birth", "address", "expiration",
	"expires", "social security", "passport", "nationality",
	"identification", "zip code", "state", "card expires",
}

var spanishKeywords = []string{
	"licencia", "nombre", "fecha de nacimiento", "domicilio", "dirección",
	"vencimiento", "vence", "seguro social", "pasaporte", "nacionalidad",
	"identificación", "código postal", "estado", "expira",
}

var (
	englishPatterns = compileKeywords(englishKeywords)
	spanishPatterns = compileKeywords(spanishKeywords)
)

func compileKeywords(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return out
}

// Detect counts whole-word keyword hits for each language and returns the
// winner. Ties resolve to English. Pure and deterministic.
func Detect(rawText string) constants.Language {
	text := strings.ToLower(rawText)
	en := countMatches(englishPatterns, text)
	es := countMatches(spanishPatterns, text)
	if es > en {
		return constants.LangSpanish
	}
	return constants.LangEnglish
}

func countMatches(patterns []*regexp.Regexp, text string) int {
	n := 0
	for _, p := range patterns {
		n += len(p.FindAllStringIndex(text, -1))
	}
	return n
}
