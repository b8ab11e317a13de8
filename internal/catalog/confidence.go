package catalog

// Per-field confidence weights: multipliers on the engine's overall score
// reflecting how reliable each field's pattern typically is. Identifier
// fields with rigid formats sit above free-text address lines.
var confidenceWeights = map[string]float64{
	"ssnNumber":      1.0,
	"licenseNumber":  0.95,
	"idNumber":       0.95,
	"passportNumber": 0.95,
	"uscisNumber":    0.95,
	"cardNumber":     0.95,
	"dateOfBirth":    0.9,
	"expirationDate": 0.9,
	"state":          0.9,
	"zipCode":        0.9,
	"category":       0.9,
	"fullName":       0.85,
	"nationality":    0.8,
	"address":        0.75,
}

const defaultConfidenceWeight = 0.8

// Per-field minimum confidence floors: a field that matched at all is never
// reported below its floor, since a syntactically plausible match carries a
// baseline trust level even under engine noise.
var confidenceFloors = map[string]int{
	"ssnNumber":      50,
	"licenseNumber":  45,
	"idNumber":       45,
	"passportNumber": 45,
	"uscisNumber":    45,
	"cardNumber":     45,
	"dateOfBirth":    40,
	"expirationDate": 40,
	"state":          40,
	"zipCode":        40,
	"fullName":       35,
	"address":        25,
}

const defaultConfidenceFloor = 30

// ConfidenceWeight returns the multiplier for a field.
func ConfidenceWeight(field string) float64 {
	if w, ok := confidenceWeights[field]; ok {
		return w
	}
	return defaultConfidenceWeight
}

// ConfidenceFloor returns the minimum reportable score for a matched field.
func ConfidenceFloor(field string) int {
	if f, ok := confidenceFloors[field]; ok {
		return f
	}
	return defaultConfidenceFloor
}
