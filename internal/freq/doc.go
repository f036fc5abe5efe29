// Package freq counts word frequencies in free-form text.
//
// # Overview
//
// Count tokenizes its input (see textnorm.Tokenize), tallies each distinct
// token and returns the results sorted by descending count. Tokens with
// equal counts keep their first-encounter order from the original text, so
// the output is deterministic for a given input.
//
// # Ordering
//
//  1. Higher counts come first.
//  2. Ties preserve the order in which the words first appeared.
//
// Count never returns a nil table; empty or word-free input produces an
// empty table, which serialises to a JSON array rather than null.
package freq
