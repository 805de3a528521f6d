// Package mrn holds the MRN construction and checksum engine: composing a
// 17-character payload from a generation request and deriving the trailing
// check character that makes the result a self-validating 18-character code.
package mrn

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/iByteABit256/MRN-Generator/internal/domain"
)

const (
	// PayloadLength is the unchecked portion of an MRN.
	PayloadLength = 17
	// MrnLength includes the trailing check character.
	MrnLength = 18

	officeLength    = 6
	referenceLength = 5
)

// alphabet is the MRN character set; the index of a character is its
// numeric value in the checksum scheme.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Compose builds the 17-character unchecked payload:
// year(2) + country(2) + office(6) + reference(5) + category(2).
// The declaration office block is written verbatim when supplied and fully
// randomized otherwise, never a mix of the two. A supplied procedure
// category occupies the final two positions; a combined category replaces
// its second character.
func Compose(req domain.GenerationRequest, rng *rand.Rand) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(PayloadLength)

	b.WriteString(req.Year)
	b.WriteString(req.CountryCode)

	if req.DeclarationOffice != "" {
		b.WriteString(req.DeclarationOffice)
	} else {
		for i := 0; i < officeLength; i++ {
			b.WriteByte(randomDigit(rng))
		}
	}

	for i := 0; i < referenceLength; i++ {
		b.WriteByte(randomAlphanumeric(rng))
	}

	switch {
	case req.ProcedureCategory != "":
		category := req.ProcedureCategory
		if req.CombinedCategory != "" {
			category = category[:1] + req.CombinedCategory
		}
		b.WriteString(category)
	default:
		b.WriteByte(randomAlphanumeric(rng))
		b.WriteByte(randomAlphanumeric(rng))
	}

	payload := b.String()
	if len(payload) != PayloadLength {
		panic(fmt.Sprintf("composed payload is %d characters, want %d", len(payload), PayloadLength))
	}

	return payload, nil
}

// Generate composes a payload and appends its check character, returning
// the completed 18-character MRN.
func Generate(req domain.GenerationRequest, rng *rand.Rand) (string, error) {
	payload, err := Compose(req, rng)
	if err != nil {
		return "", err
	}

	check, err := CheckCharacter(payload)
	if err != nil {
		return "", err
	}

	return payload + string(check), nil
}

func randomDigit(rng *rand.Rand) byte {
	return alphabet[rng.IntN(10)]
}

func randomAlphanumeric(rng *rand.Rand) byte {
	return alphabet[rng.IntN(len(alphabet))]
}
