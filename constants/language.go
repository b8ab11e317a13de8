package constants

// Language is the extraction language for pattern matching and OCR.
type Language string

const (
	LangEnglish Language = "en"
	LangSpanish Language = "es"
)

// DefaultLanguage is used when detection is inconclusive or no hint is given.
const DefaultLanguage = LangEnglish

// TesseractLang maps a Language to the traineddata name tesseract expects.
func TesseractLang(l Language) string {
	if l == LangSpanish {
		return "spa"
	}
	return "eng"
}
