package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenize splits text into lowercase words. Punctuation and symbol runes
// separate words exactly as whitespace does, empty tokens are dropped, and
// letters and digits survive unchanged apart from lowercasing. Wordless
// input yields nil.
func Tokenize(text string) []string {
	lowered := cases.Lower(language.Und).String(text)
	separated := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, lowered)

	words := strings.Fields(separated)
	if len(words) == 0 {
		return nil
	}
	return words
}

// FoldAlphanumeric reduces s to its lowercase letters and numbers, dropping
// every other rune. The fold maps runes one to one, so folding commutes with
// rune reversal; palindrome comparison relies on that.
func FoldAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
