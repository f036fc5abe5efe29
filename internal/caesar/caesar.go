package caesar

import (
	"strings"

	"textkit/internal/domain"
)

const alphabetSize = 26

// Transform rotates the ASCII letters of text by shift positions in the
// given direction. Non-letter runes pass through unchanged.
func Transform(text string, shift int, dir domain.Direction) string {
	// Reduce into [0, 25]; Go's % keeps the dividend's sign.
	n := ((shift % alphabetSize) + alphabetSize) % alphabetSize
	if dir == domain.Decrypt {
		n = (alphabetSize - n) % alphabetSize
	}
	if n == 0 {
		return text
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+rune(n))%alphabetSize
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+rune(n))%alphabetSize
		default:
			return r
		}
	}, text)
}
