// Package caesar implements the classic Caesar substitution cipher over the
// ASCII alphabet.
//
// # Overview
//
// Transform rotates each ASCII letter by a shift amount, preserving case.
// Every other rune, including digits, punctuation, whitespace and non-ASCII
// letters, passes through unchanged, so output length always equals input
// length in runes.
//
// Shifts of any sign and magnitude are accepted: the effective rotation is
// the shift reduced modulo 26 into [0, 25]. Decryption rotates by the
// modular inverse, so Transform(Transform(s, n, Encrypt), n, Decrypt) == s
// for all n.
//
// # Security notes
//
// A 26-way rotation is trivially brute-forced and offers no real secrecy.
// The cipher is provided as a text-transformation utility, not a security
// mechanism.
package caesar
