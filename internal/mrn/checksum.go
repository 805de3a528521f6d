package mrn

import (
	"fmt"

	"github.com/iByteABit256/MRN-Generator/internal/domain"
)

// checkSentinel is emitted when the mod-37 remainder is 36, which has no
// single-character representation in the 36-character alphabet. A fixed
// substitution keeps the check character deterministic for every payload.
const checkSentinel = '0'

// CheckCharacter derives the 18th character of an MRN from its 17-character
// payload using the customs MOD 37/36 scheme: the payload is read as a
// base-36 numeral and reduced mod 37, with digits valued 0-9 and letters
// A-Z valued 10-35.
//
// The remainder is kept incrementally, one character at a time, since the
// full numeral overflows fixed-width integers at this length.
func CheckCharacter(payload string) (byte, error) {
	if len(payload) != PayloadLength {
		return 0, domain.NewInvalidPayloadError(fmt.Sprintf("length is %d, want %d", len(payload), PayloadLength))
	}

	remainder := 0
	for i := 0; i < len(payload); i++ {
		value, ok := characterValue(payload[i])
		if !ok {
			return 0, domain.NewInvalidPayloadError(fmt.Sprintf("character %q at position %d is outside 0-9/A-Z", payload[i], i))
		}
		remainder = (remainder*36 + value) % 37
	}

	if remainder == 36 {
		return checkSentinel, nil
	}

	return alphabet[remainder], nil
}

func characterValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
