// Package palindrome reports whether text reads the same forwards and
// backwards once case, spacing and punctuation are ignored.
//
// Check folds the input to lowercase letters and digits (see
// textnorm.FoldAlphanumeric) and compares the folded form against its rune
// reversal. The empty fold is a palindrome, so "" and punctuation-only
// strings check true.
package palindrome
