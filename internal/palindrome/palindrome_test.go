package palindrome_test

import (
	"testing"

	"textkit/internal/palindrome"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"classic phrase", "A man, a plan, a canal: Panama", true},
		{"quoted letters", "No 'x' in Nixon", true},
		{"plain word", "racecar", true},
		{"mixed case", "RaceCar", true},
		{"digits", "12:21", true},
		{"single rune", "x", true},
		{"empty string", "", true},
		{"punctuation only", "?!...", true},
		{"not a palindrome", "hello world", false},
		{"near miss", "palindrome", false},
		{"accented", "été", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := palindrome.Check(tt.text)
			if got.Palindrome != tt.want {
				t.Errorf("Check(%q).Palindrome = %v, want %v", tt.text, got.Palindrome, tt.want)
			}
		})
	}
}

func TestCheckNormalized(t *testing.T) {
	got := palindrome.Check("A man, a plan, a canal: Panama")
	if want := "amanaplanacanalpanama"; got.Normalized != want {
		t.Errorf("Normalized = %q, want %q", got.Normalized, want)
	}
}

// A string and its reversal always share a verdict.
func TestCheckReversalSymmetry(t *testing.T) {
	inputs := []string{"hello", "racecar", "No lemon, no melon", "abc 123", "été!"}
	for _, in := range inputs {
		runes := []rune(in)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		reversed := string(runes)

		if a, b := palindrome.Check(in), palindrome.Check(reversed); a.Palindrome != b.Palindrome {
			t.Errorf("Check(%q) = %v but Check(%q) = %v", in, a.Palindrome, reversed, b.Palindrome)
		}
	}
}
