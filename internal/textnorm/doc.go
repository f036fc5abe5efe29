// Package textnorm exposes the normalization primitives shared by the
// analysis packages.
//
// Contents
//
//   - Lowercase word tokenization for frequency counting (Tokenize)
//   - Alphanumeric case folding for palindrome comparison (FoldAlphanumeric)
//
// # Notes
//
// Tokenize treats every Unicode punctuation or symbol rune as a word
// separator, a superset of the ASCII punctuation set (which mixes both
// categories), so hyphenated and apostrophized words split into their parts.
// Letters and digits outside ASCII pass through and are counted rather than
// stripped.
package textnorm
