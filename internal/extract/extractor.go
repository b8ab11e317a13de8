// Package extract applies the pattern catalog to raw OCR text.
package extract

import (
	"log/slog"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/catalog"
	"github.com/hireflow/docscan/internal/entity"
)

// Extractor is Stage 3: raw text -> field map.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Fields runs the (documentType, language) rule set over the raw text.
// Rules are independent: no rule's outcome affects another's evaluation.
// A required rule that does not match stores an explicit empty value so
// downstream validation can flag the absence; optional misses are omitted.
func (e *Extractor) Fields(rawText string, docType constants.DocumentType, lang constants.Language) entity.FieldMap {
	rules := catalog.RulesFor(docType, lang)
	out := make(entity.FieldMap, len(rules))

	for _, rule := range rules {
		m := rule.Match.FindStringSubmatch(rawText)
		if m == nil || len(m) < 2 {
			if rule.Required {
				out[rule.Field] = entity.Text("")
			}
			continue
		}
		if rule.Transform != nil {
			out[rule.Field] = rule.Transform(m[1])
		} else {
			out[rule.Field] = catalog.CleanText(m[1])
		}
	}

	e.logger.Debug("extract.fields.ok", "doc_type", docType, "lang", lang, "fields", len(out))
	return out
}
