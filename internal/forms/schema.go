// Package forms exposes manual-entry form support: field templates are
// turned into JSON Schemas and caller payloads are validated against them.
package forms

import (
	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/catalog"
)

// BuildManualEntrySchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for a document type's manual-entry form. Unknown fields are
// rejected so a typo'd field name cannot silently pollute stored results.
func BuildManualEntrySchema(t constants.DocumentType) map[string]any {
	templates := catalog.TemplatesFor(t)
	props := make(map[string]any, len(templates))
	var required []string

	for _, tpl := range templates {
		prop := map[string]any{"type": "string"}
		switch tpl.Kind {
		case "date":
			prop["pattern"] = `^\d{2}/\d{2}/\d{4}$`
		case "select":
			prop["enum"] = toAnySlice(tpl.Options)
		default:
			prop["maxLength"] = 100
			if tpl.Required {
				prop["minLength"] = 1
			}
		}
		props[tpl.Name] = prop
		if tpl.Required {
			required = append(required, tpl.Name)
		}
	}

	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
