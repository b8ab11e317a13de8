package catalog

import (
	"regexp"

	"github.com/hireflow/docscan/constants"
)

// Rule is one extraction pattern: the first capture group of Match is the
// candidate value for Field. Rules are immutable after init and evaluated
// independently, in catalog order.
type Rule struct {
	Field     string
	Match     *regexp.Regexp
	Transform Transform // nil -> CleanText
	Required  bool
	Lang      constants.Language
}

// rules merges both languages per document type; RulesFor filters by the
// active language, so language selection must happen before extraction.
var rules = map[constants.DocumentType][]Rule{
	constants.DocTypeDriversLicense: {
		{
			Field:     "licenseNumber",
			Match:     regexp.MustCompile(`(?i)\b(?:DLN?|LIC(?:ENSE)?)\s*(?:NO|NUM)?[#:.\s]*([A-Z0-9]{6,14})\b`),
			Transform: Upper,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "fullName",
			Match:     regexp.MustCompile(`(?im)^\s*(?:NAME|LN/FN)[:\s]+([A-Za-z][A-Za-z'.,\- ]{1,60})$`),
			Transform: CleanText,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "dateOfBirth",
			Match:     regexp.MustCompile(`(?i)\b(?:DOB|DATE OF BIRTH|BIRTH\s*DATE)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "expirationDate",
			Match:     regexp.MustCompile(`(?i)\b(?:EXP|EXPIRES|EXPIRATION(?:\s*DATE)?)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "address",
			Match:     regexp.MustCompile(`(?im)^\s*(?:ADD(?:RESS)?[:\s]+)?(\d+\s+[A-Z0-9'.#\- ]+(?:AVE(?:NUE)?|ST(?:REET)?|RD|ROAD|DR(?:IVE)?|LN|LANE|BLVD|WAY|CT|COURT)\.?)\s*$`),
			Transform: CleanText,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "state",
			Match:     regexp.MustCompile(`\b([A-Z]{2})\s+\d{5}(?:-\d{4})?\b`),
			Transform: Upper,
			Lang:      constants.LangEnglish,
		},
		{
			Field: "zipCode",
			Match: regexp.MustCompile(`\b(\d{5}(?:-\d{4})?)\b`),
			Lang:  constants.LangEnglish,
		},
		{
			Field:     "licenseNumber",
			Match:     regexp.MustCompile(`(?i)\b(?:LICENCIA|LIC)\s*(?:NO|NUM)?[#:.\s]*([A-Z0-9]{6,14})\b`),
			Transform: Upper,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "fullName",
			Match:     regexp.MustCompile(`(?im)^\s*NOMBRE[:\s]+([A-Za-zÁÉÍÓÚÑáéíóúñ'.,\- ]{2,60})$`),
			Transform: CleanText,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "dateOfBirth",
			Match:     regexp.MustCompile(`(?i)\bFECHA DE NACIMIENTO[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "expirationDate",
			Match:     regexp.MustCompile(`(?i)\b(?:VENCIMIENTO|VENCE|EXPIRA)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "address",
			Match:     regexp.MustCompile(`(?im)^\s*(?:DOMICILIO|DIRECCI[OÓ]N)[:\s]+(.{5,80})$`),
			Transform: CleanText,
			Lang:      constants.LangSpanish,
		},
		{
			Field: "zipCode",
			Match: regexp.MustCompile(`(?i)\bC[OÓ]DIGO POSTAL[:\s]*(\d{5}(?:-\d{4})?)\b`),
			Lang:  constants.LangSpanish,
		},
	},

	constants.DocTypeStateID: {
		{
			Field:     "idNumber",
			Match:     regexp.MustCompile(`(?i)\b(?:IDN?|ID\s*CARD|IDENTIFICATION)\s*(?:NO|NUM)?[#:.\s]*([A-Z0-9]{6,14})\b`),
			Transform: Upper,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "fullName",
			Match:     regexp.MustCompile(`(?im)^\s*NAME[:\s]+([A-Za-z][A-Za-z'.,\- ]{1,60})$`),
			Transform: CleanText,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "dateOfBirth",
			Match:     regexp.MustCompile(`(?i)\b(?:DOB|DATE OF BIRTH)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "expirationDate",
			Match:     regexp.MustCompile(`(?i)\b(?:EXP|EXPIRES)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "state",
			Match:     regexp.MustCompile(`\b([A-Z]{2})\s+\d{5}(?:-\d{4})?\b`),
			Transform: Upper,
			Lang:      constants.LangEnglish,
		},
		{
			Field: "zipCode",
			Match: regexp.MustCompile(`\b(\d{5}(?:-\d{4})?)\b`),
			Lang:  constants.LangEnglish,
		},
		{
			Field:     "idNumber",
			Match:     regexp.MustCompile(`(?i)\bIDENTIFICACI[OÓ]N\s*(?:NO|NUM)?[#:.\s]*([A-Z0-9]{6,14})\b`),
			Transform: Upper,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "fullName",
			Match:     regexp.MustCompile(`(?im)^\s*NOMBRE[:\s]+([A-Za-zÁÉÍÓÚÑáéíóúñ'.,\- ]{2,60})$`),
			Transform: CleanText,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "dateOfBirth",
			Match:     regexp.MustCompile(`(?i)\bFECHA DE NACIMIENTO[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
	},

	constants.DocTypePassport: {
		{
			Field:     "passportNumber",
			Match:     regexp.MustCompile(`\b([A-Z][0-9]{8})\b`),
			Transform: Upper,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "fullName",
			Match:     regexp.MustCompile(`(?im)^\s*(?:NAME|SURNAME|GIVEN NAMES?)[:\s]+([A-Za-z][A-Za-z'.,\- ]{1,60})$`),
			Transform: CleanText,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "nationality",
			Match:     regexp.MustCompile(`(?im)^\s*NATIONALITY[:\s]+([A-Za-z ]{3,40})$`),
			Transform: CleanText,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "dateOfBirth",
			Match:     regexp.MustCompile(`(?i)\bDATE OF BIRTH[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "expirationDate",
			Match:     regexp.MustCompile(`(?i)\bDATE OF EXPIR(?:Y|ATION)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "passportNumber",
			Match:     regexp.MustCompile(`\b([A-Z][0-9]{8})\b`),
			Transform: Upper,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "fullName",
			Match:     regexp.MustCompile(`(?im)^\s*(?:NOMBRE|APELLIDOS?)[:\s]+([A-Za-zÁÉÍÓÚÑáéíóúñ'.,\- ]{2,60})$`),
			Transform: CleanText,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "nationality",
			Match:     regexp.MustCompile(`(?im)^\s*NACIONALIDAD[:\s]+([A-Za-zÁÉÍÓÚÑáéíóúñ ]{3,40})$`),
			Transform: CleanText,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "dateOfBirth",
			Match:     regexp.MustCompile(`(?i)\bFECHA DE NACIMIENTO[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
	},

	constants.DocTypeWorkAuthorization: {
		{
			Field:     "uscisNumber",
			Match:     regexp.MustCompile(`(?i)\bUSCIS\s*(?:#|NO\.?|NUMBER)?[:\s]*(\d{3}-?\d{3}-?\d{3})\b`),
			Transform: DigitsOnly,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "cardNumber",
			Match:     regexp.MustCompile(`(?i)\bCARD\s*(?:#|NO\.?)?[:\s]*([A-Z]{3}\d{10})\b`),
			Transform: Upper,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "fullName",
			Match:     regexp.MustCompile(`(?im)^\s*(?:NAME|SURNAME)[:\s]+([A-Za-z][A-Za-z'.,\- ]{1,60})$`),
			Transform: CleanText,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "category",
			Match:     regexp.MustCompile(`(?i)\bCATEGORY[:\s]+([A-Z]\d{1,2})\b`),
			Transform: Upper,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "expirationDate",
			Match:     regexp.MustCompile(`(?i)\b(?:CARD EXPIRES|EXPIRES|VALID UNTIL)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "uscisNumber",
			Match:     regexp.MustCompile(`(?i)\bUSCIS\s*(?:#|NO\.?|N[UÚ]MERO)?[:\s]*(\d{3}-?\d{3}-?\d{3})\b`),
			Transform: DigitsOnly,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "fullName",
			Match:     regexp.MustCompile(`(?im)^\s*NOMBRE[:\s]+([A-Za-zÁÉÍÓÚÑáéíóúñ'.,\- ]{2,60})$`),
			Transform: CleanText,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "expirationDate",
			Match:     regexp.MustCompile(`(?i)\b(?:VENCE|V[AÁ]LIDO HASTA)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			Transform: NormalizeDate,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
	},

	constants.DocTypeSSN: {
		{
			Field:     "ssnNumber",
			Match:     regexp.MustCompile(`\b(\d{3}-?\d{2}-?\d{4})\b`),
			Transform: DigitsOnly,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			// The cardholder name is printed on the line below the number.
			Field:     "fullName",
			Match:     regexp.MustCompile(`\d{3}-?\d{2}-?\d{4}[ \t]*\n[ \t]*([A-Za-z][A-Za-z'.\- ]{2,60})`),
			Transform: CleanText,
			Required:  true,
			Lang:      constants.LangEnglish,
		},
		{
			Field:     "ssnNumber",
			Match:     regexp.MustCompile(`\b(\d{3}-?\d{2}-?\d{4})\b`),
			Transform: DigitsOnly,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
		{
			Field:     "fullName",
			Match:     regexp.MustCompile(`\d{3}-?\d{2}-?\d{4}[ \t]*\n[ \t]*([A-Za-zÁÉÍÓÚÑáéíóúñ'.\- ]{3,60})`),
			Transform: CleanText,
			Required:  true,
			Lang:      constants.LangSpanish,
		},
	},
}

// RulesFor returns the ordered rule set for a document type in the given
// language. The returned slice is shared read-only state; callers must not
// mutate it.
func RulesFor(t constants.DocumentType, lang constants.Language) []Rule {
	all := rules[t]
	out := make([]Rule, 0, len(all))
	for _, r := range all {
		if r.Lang == lang {
			out = append(out, r)
		}
	}
	return out
}
