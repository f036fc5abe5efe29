package palindrome

import (
	"textkit/internal/domain"
	"textkit/internal/textnorm"
)

// Check folds text to lowercase alphanumerics and reports whether the
// folded form equals its reversal.
func Check(text string) domain.PalindromeVerdict {
	folded := textnorm.FoldAlphanumeric(text)
	return domain.PalindromeVerdict{
		Palindrome: folded == reverse(folded),
		Normalized: folded,
	}
}

// reverse returns s with its runes in reverse order.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
