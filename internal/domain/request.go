package domain

import (
	"strings"
)

// GenerationRequest carries the fields for one MRN generation. Optional
// fields are empty strings when absent. Instances built through
// NewGenerationRequest are already normalized and validated.
type GenerationRequest struct {
	CountryCode       string
	DeclarationOffice string
	ProcedureCategory string
	CombinedCategory  string
	Year              string
}

// NewGenerationRequest uppercases the letter-bearing fields and validates
// every constraint before any randomness is consumed.
func NewGenerationRequest(countryCode, declarationOffice, procedureCategory, combinedCategory, year string) (GenerationRequest, error) {
	req := GenerationRequest{
		CountryCode:       strings.ToUpper(countryCode),
		DeclarationOffice: declarationOffice,
		ProcedureCategory: strings.ToUpper(procedureCategory),
		CombinedCategory:  strings.ToUpper(combinedCategory),
		Year:              year,
	}

	if err := req.Validate(); err != nil {
		return GenerationRequest{}, err
	}

	return req, nil
}

// Validate checks length and character-class constraints for every field.
// Optional fields are only checked when present.
func (r GenerationRequest) Validate() error {
	if !isLetters(r.CountryCode) || len(r.CountryCode) != 2 {
		return NewInvalidFieldError("country code", "exactly 2 letters")
	}

	if len(r.Year) != 2 || !isDigits(r.Year) {
		return NewInvalidFieldError("year", "exactly 2 digits")
	}

	if r.DeclarationOffice != "" {
		if len(r.DeclarationOffice) != 6 || !isDigits(r.DeclarationOffice) {
			return NewInvalidFieldError("declaration office", "exactly 6 digits")
		}
	}

	if r.ProcedureCategory != "" {
		if len(r.ProcedureCategory) != 2 || !isLetter(r.ProcedureCategory[0]) || !isAlphanumeric(r.ProcedureCategory[1]) {
			return NewInvalidFieldError("procedure category", "a letter followed by a letter or digit")
		}
	}

	if r.CombinedCategory != "" {
		if r.ProcedureCategory == "" {
			return NewInvalidFieldError("combined category", "accompanied by a procedure category")
		}
		if len(r.CombinedCategory) != 1 || !isLetter(r.CombinedCategory[0]) {
			return NewInvalidFieldError("combined category", "exactly 1 letter")
		}
	}

	return nil
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphanumeric(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
