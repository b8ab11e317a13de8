package constants

// DocumentType is the canonical document category for uploaded files.
type DocumentType string

// Stable values (store these exact strings in DB).
const (
	DocTypeDriversLicense    DocumentType = "drivers_license"
	DocTypeStateID           DocumentType = "state_id"
	DocTypePassport          DocumentType = "passport"
	DocTypeWorkAuthorization DocumentType = "work_authorization"
	DocTypeSSN               DocumentType = "ssn"
)

// OCRSupportedTypes holds the document types the extraction pipeline can
// process. Anything else (handbooks, offer letters, ...) is rejected up
// front rather than degraded.
var OCRSupportedTypes = map[DocumentType]struct{}{
	DocTypeDriversLicense:    {},
	DocTypeStateID:           {},
	DocTypePassport:          {},
	DocTypeWorkAuthorization: {},
	DocTypeSSN:               {},
}

// IsOCRSupported reports whether the pipeline has a pattern catalog for t.
func IsOCRSupported(t DocumentType) bool {
	_, ok := OCRSupportedTypes[t]
	return ok
}

// LabelKey returns the translation key for a document type's display label.
func (t DocumentType) LabelKey() string {
	if IsOCRSupported(t) {
		return "doctype." + string(t)
	}
	return "doctype.unknown"
}
