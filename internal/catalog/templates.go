package catalog

import "github.com/hireflow/docscan/constants"

// FieldTemplate is a read-only UI hint for manual-entry forms: what kind of
// input a field needs, whether it is required, its label translation key,
// and the allowed options for enumerated fields.
type FieldTemplate struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"` // text | date | select
	Required bool     `json:"required"`
	LabelKey string   `json:"labelKey"`
	Options  []string `json:"options,omitempty"`
}

// USStates holds the two-letter codes accepted for the state field.
var USStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

var usStateSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(USStates))
	for _, s := range USStates {
		m[s] = struct{}{}
	}
	return m
}()

// IsUSState reports whether code is a known two-letter state code.
func IsUSState(code string) bool {
	_, ok := usStateSet[code]
	return ok
}

var fieldTemplates = map[constants.DocumentType][]FieldTemplate{
	constants.DocTypeDriversLicense: {
		{Name: "licenseNumber", Kind: "text", Required: true, LabelKey: "field.license_number"},
		{Name: "fullName", Kind: "text", Required: true, LabelKey: "field.full_name"},
		{Name: "dateOfBirth", Kind: "date", Required: true, LabelKey: "field.date_of_birth"},
		{Name: "expirationDate", Kind: "date", LabelKey: "field.expiration_date"},
		{Name: "address", Kind: "text", LabelKey: "field.address"},
		{Name: "state", Kind: "select", LabelKey: "field.state", Options: USStates},
		{Name: "zipCode", Kind: "text", LabelKey: "field.zip_code"},
	},
	constants.DocTypeStateID: {
		{Name: "idNumber", Kind: "text", Required: true, LabelKey: "field.id_number"},
		{Name: "fullName", Kind: "text", Required: true, LabelKey: "field.full_name"},
		{Name: "dateOfBirth", Kind: "date", Required: true, LabelKey: "field.date_of_birth"},
		{Name: "expirationDate", Kind: "date", LabelKey: "field.expiration_date"},
		{Name: "state", Kind: "select", LabelKey: "field.state", Options: USStates},
		{Name: "zipCode", Kind: "text", LabelKey: "field.zip_code"},
	},
	constants.DocTypePassport: {
		{Name: "passportNumber", Kind: "text", Required: true, LabelKey: "field.passport_number"},
		{Name: "fullName", Kind: "text", Required: true, LabelKey: "field.full_name"},
		{Name: "nationality", Kind: "text", LabelKey: "field.nationality"},
		{Name: "dateOfBirth", Kind: "date", Required: true, LabelKey: "field.date_of_birth"},
		{Name: "expirationDate", Kind: "date", LabelKey: "field.expiration_date"},
	},
	constants.DocTypeWorkAuthorization: {
		{Name: "uscisNumber", Kind: "text", Required: true, LabelKey: "field.uscis_number"},
		{Name: "cardNumber", Kind: "text", LabelKey: "field.card_number"},
		{Name: "fullName", Kind: "text", Required: true, LabelKey: "field.full_name"},
		{Name: "category", Kind: "text", LabelKey: "field.category"},
		{Name: "expirationDate", Kind: "date", Required: true, LabelKey: "field.expiration_date"},
	},
	constants.DocTypeSSN: {
		{Name: "ssnNumber", Kind: "text", Required: true, LabelKey: "field.ssn_number"},
		{Name: "fullName", Kind: "text", Required: true, LabelKey: "field.full_name"},
	},
}

// TemplatesFor returns the manual-entry field templates for a document type.
// The returned slice is shared read-only state; callers must not mutate it.
func TemplatesFor(t constants.DocumentType) []FieldTemplate {
	return fieldTemplates[t]
}
