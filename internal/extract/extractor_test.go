package extract

import (
	"testing"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/entity"
)

func TestExtractSSNCard(t *testing.T) {
	x := NewExtractor(nil)
	fields := x.Fields("SOCIAL SECURITY\n123-45-6789\nJOHN DOE", constants.DocTypeSSN, constants.LangEnglish)

	if got := fields["ssnNumber"].Raw; got != "123456789" {
		t.Fatalf("ssnNumber = %q, want 123456789 (dashes stripped)", got)
	}
	if fields["ssnNumber"].Kind != entity.KindNumber {
		t.Fatalf("ssnNumber kind = %q, want number", fields["ssnNumber"].Kind)
	}
	if got := fields["fullName"].Raw; got != "JOHN DOE" {
		t.Fatalf("fullName = %q, want JOHN DOE", got)
	}
}

func TestExtractDriversLicenseEnglish(t *testing.T) {
	text := "TEXAS DRIVER LICENSE\n" +
		"DL 12345678\n" +
		"NAME: JOHN Q DOE\n" +
		"DOB: 1/5/1990\n" +
		"EXP: 01/15/2030\n" +
		"1234 ELM STREET\n" +
		"AUSTIN TX 78701\n"
	x := NewExtractor(nil)
	fields := x.Fields(text, constants.DocTypeDriversLicense, constants.LangEnglish)

	if got := fields["licenseNumber"].Raw; got != "12345678" {
		t.Fatalf("licenseNumber = %q", got)
	}
	if got := fields["fullName"].Raw; got != "JOHN Q DOE" {
		t.Fatalf("fullName = %q", got)
	}
	if got := fields["dateOfBirth"].Raw; got != "01/05/1990" {
		t.Fatalf("dateOfBirth = %q, want normalized 01/05/1990", got)
	}
	if fields["dateOfBirth"].Kind != entity.KindDate {
		t.Fatalf("dateOfBirth kind = %q, want date", fields["dateOfBirth"].Kind)
	}
	if got := fields["expirationDate"].Raw; got != "01/15/2030" {
		t.Fatalf("expirationDate = %q", got)
	}
	if got := fields["state"].Raw; got != "TX" {
		t.Fatalf("state = %q", got)
	}
	if got := fields["zipCode"].Raw; got != "78701" {
		t.Fatalf("zipCode = %q", got)
	}
	if got := fields["address"].Raw; got != "1234 ELM STREET" {
		t.Fatalf("address = %q", got)
	}
}

func TestExtractDriversLicenseSpanish(t *testing.T) {
	text := "LICENCIA DE CONDUCIR\n" +
		"LICENCIA NO. A1234567\n" +
		"NOMBRE: JUAN PÉREZ\n" +
		"FECHA DE NACIMIENTO: 15/01/1990\n" +
		"VENCIMIENTO: 15/01/2030\n" +
		"CÓDIGO POSTAL: 78701\n"
	x := NewExtractor(nil)
	fields := x.Fields(text, constants.DocTypeDriversLicense, constants.LangSpanish)

	if got := fields["licenseNumber"].Raw; got != "A1234567" {
		t.Fatalf("licenseNumber = %q", got)
	}
	if got := fields["fullName"].Raw; got != "JUAN PÉREZ" {
		t.Fatalf("fullName = %q", got)
	}
	if got := fields["zipCode"].Raw; got != "78701" {
		t.Fatalf("zipCode = %q", got)
	}
	// English-tagged patterns must not run under Spanish: the merged
	// catalog entry is filtered by language before evaluation.
	if _, ok := fields["state"]; ok {
		t.Fatal("state is an English-tagged rule and should be skipped under es")
	}
}

func TestRequiredMissStoresEmptyString(t *testing.T) {
	x := NewExtractor(nil)
	fields := x.Fields("completely unrelated text", constants.DocTypeSSN, constants.LangEnglish)

	v, ok := fields["ssnNumber"]
	if !ok {
		t.Fatal("required field ssnNumber must be present even when unmatched")
	}
	if v.Raw != "" {
		t.Fatalf("ssnNumber = %q, want empty string", v.Raw)
	}
	if _, ok := fields["fullName"]; !ok {
		t.Fatal("required field fullName must be present even when unmatched")
	}
}

func TestAllRequiredFieldsMatchWhenPresent(t *testing.T) {
	texts := map[constants.DocumentType]string{
		constants.DocTypeDriversLicense: "DL 12345678\nNAME: JOHN DOE\nDOB: 01/15/1990\n",
		constants.DocTypeStateID:        "ID NO. X9876543\nNAME: JOHN DOE\nDOB: 01/15/1990\n",
		constants.DocTypePassport:       "P1234567Q\nX12345678\nNAME: JOHN DOE\nDATE OF BIRTH: 01/15/1990\n",
		constants.DocTypeWorkAuthorization: "USCIS# 123-456-789\nNAME: JOHN DOE\n" +
			"CARD EXPIRES: 01/15/2030\n",
		constants.DocTypeSSN: "123-45-6789\nJOHN DOE\n",
	}
	x := NewExtractor(nil)
	for docType, text := range texts {
		fields := x.Fields(text, docType, constants.LangEnglish)
		for name, v := range fields {
			if v.Raw == "" {
				t.Fatalf("%s: required field %q extracted empty from %q", docType, name, text)
			}
		}
	}
}

func TestExtractPassport(t *testing.T) {
	text := "PASSPORT\nUNITED STATES OF AMERICA\n" +
		"PASSPORT NO: X12345678\n" +
		"SURNAME: DOE\n" +
		"NATIONALITY: UNITED STATES\n" +
		"DATE OF BIRTH: 01/15/1990\n" +
		"DATE OF EXPIRY: 01/15/2032\n"
	x := NewExtractor(nil)
	fields := x.Fields(text, constants.DocTypePassport, constants.LangEnglish)

	if got := fields["passportNumber"].Raw; got != "X12345678" {
		t.Fatalf("passportNumber = %q", got)
	}
	if got := fields["nationality"].Raw; got != "UNITED STATES" {
		t.Fatalf("nationality = %q", got)
	}
	if got := fields["expirationDate"].Raw; got != "01/15/2032" {
		t.Fatalf("expirationDate = %q", got)
	}
}

func TestExtractWorkAuthorization(t *testing.T) {
	text := "EMPLOYMENT AUTHORIZATION DOCUMENT\n" +
		"USCIS# 123-456-789\n" +
		"CARD# SRC1234567890\n" +
		"NAME: JANE ROE\n" +
		"CATEGORY: C09\n" +
		"CARD EXPIRES: 06/30/2027\n"
	x := NewExtractor(nil)
	fields := x.Fields(text, constants.DocTypeWorkAuthorization, constants.LangEnglish)

	if got := fields["uscisNumber"].Raw; got != "123456789" {
		t.Fatalf("uscisNumber = %q, want digits only", got)
	}
	if got := fields["cardNumber"].Raw; got != "SRC1234567890" {
		t.Fatalf("cardNumber = %q", got)
	}
	if got := fields["category"].Raw; got != "C09" {
		t.Fatalf("category = %q", got)
	}
}
