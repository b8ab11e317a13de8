package catalog

import "regexp"

// ValidationPattern pairs a format regex with the translation key emitted
// when a value fails it.
type ValidationPattern struct {
	Pattern  *regexp.Regexp
	ErrorKey string
}

// GenericFormatErrorKey is the fallback for fields without a dedicated key.
const GenericFormatErrorKey = "validation.invalid_format"

var validationPatterns = map[string]ValidationPattern{
	"ssnNumber":      {regexp.MustCompile(`^\d{9}$`), "validation.ssn_format"},
	"licenseNumber":  {regexp.MustCompile(`^[A-Z0-9]{6,14}$`), "validation.license_format"},
	"idNumber":       {regexp.MustCompile(`^[A-Z0-9]{6,14}$`), "validation.id_format"},
	"passportNumber": {regexp.MustCompile(`^[A-Z][0-9]{8}$`), "validation.passport_format"},
	"uscisNumber":    {regexp.MustCompile(`^\d{9}$`), "validation.uscis_format"},
	"cardNumber":     {regexp.MustCompile(`^[A-Z]{3}\d{10}$`), "validation.card_format"},
	"dateOfBirth":    {regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), "validation.date_format"},
	"expirationDate": {regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), "validation.date_format"},
	"state":          {regexp.MustCompile(`^[A-Z]{2}$`), "validation.state_code"},
	"zipCode":        {regexp.MustCompile(`^\d{5}(-\d{4})?$`), "validation.zip_code"},
	"category":       {regexp.MustCompile(`^[A-Z]\d{1,2}$`), GenericFormatErrorKey},
}

// ValidationPatternFor returns the format rule for a field, if one exists.
func ValidationPatternFor(field string) (ValidationPattern, bool) {
	p, ok := validationPatterns[field]
	return p, ok
}
