// Package score converts the engine's overall confidence into per-field
// scores using the catalog's weights, validation patterns, and floors.
package score

import (
	"math"

	"github.com/hireflow/docscan/internal/catalog"
	"github.com/hireflow/docscan/internal/entity"
)

const (
	validBoost     = 1.1
	validBoostCap  = 95
	invalidPenalty = 0.7
)

// FieldConfidences scores every extracted field. Non-empty fields start at
// overall engine confidence times the field weight, get boosted (capped) or
// penalized by their validation pattern, then are clamped up to the field's
// floor and into [0,100]. Empty fields score 0.
func FieldConfidences(fields entity.FieldMap, overall float64) map[string]int {
	out := make(map[string]int, len(fields))
	for name, value := range fields {
		if value.Empty() {
			out[name] = 0
			continue
		}
		out[name] = fieldConfidence(name, value.Raw, overall)
	}
	return out
}

func fieldConfidence(field, value string, overall float64) int {
	score := overall * catalog.ConfidenceWeight(field)

	if vp, ok := catalog.ValidationPatternFor(field); ok {
		if vp.Pattern.MatchString(value) {
			score = math.Min(score*validBoost, validBoostCap)
		} else {
			score *= invalidPenalty
		}
	}

	// A field that matched at all is never reported below its floor: a
	// syntactically plausible match carries baseline trust under engine
	// noise.
	if floor := float64(catalog.ConfidenceFloor(field)); score < floor {
		score = floor
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
