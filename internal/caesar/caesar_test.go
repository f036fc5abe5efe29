package caesar_test

import (
	"testing"
	"unicode/utf8"

	"textkit/internal/caesar"
	"textkit/internal/domain"
)

func TestTransformEncrypt(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		shift int
		want  string
	}{
		{"classic greeting", "Hello, World!", 3, "Khoor, Zruog!"},
		{"wraps z to a", "xyz XYZ", 3, "abc ABC"},
		{"wraps at alphabet end", "Z", 1, "A"},
		{"negative shift wraps backwards", "a", -1, "z"},
		{"zero shift is identity", "Attack at dawn", 0, "Attack at dawn"},
		{"full rotation is identity", "Attack at dawn", 26, "Attack at dawn"},
		{"shift reduces modulo 26", "abc", 27, "bcd"},
		{"large shift", "abc", 1000, "mno"},
		{"digits and punctuation pass through", "a1! b2?", 2, "c1! d2?"},
		{"non-ascii letters pass through", "café über", 1, "dbgé ücfs"},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := caesar.Transform(tt.text, tt.shift, domain.Encrypt)
			if got != tt.want {
				t.Errorf("Transform(%q, %d, Encrypt) = %q, want %q", tt.text, tt.shift, got, tt.want)
			}
		})
	}
}

func TestTransformDecrypt(t *testing.T) {
	got := caesar.Transform("def", 3, domain.Decrypt)
	if want := "abc"; got != want {
		t.Errorf("Transform(\"def\", 3, Decrypt) = %q, want %q", got, want)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog.",
		"MiXeD CaSe 123",
		"symbols #$% stay",
		"café über 東京",
	}
	shifts := []int{-31, -1, 0, 1, 3, 13, 25, 26, 52, 1000}

	for _, text := range texts {
		for _, shift := range shifts {
			enc := caesar.Transform(text, shift, domain.Encrypt)
			dec := caesar.Transform(enc, shift, domain.Decrypt)
			if dec != text {
				t.Errorf("round trip with shift %d: got %q, want %q", shift, dec, text)
			}
		}
	}
}

func TestTransformPreservesLength(t *testing.T) {
	text := "Length must not change: αβγ, 123!"
	got := caesar.Transform(text, 7, domain.Encrypt)
	if utf8.RuneCountInString(got) != utf8.RuneCountInString(text) {
		t.Errorf("rune count changed: %q -> %q", text, got)
	}
}

func TestTransformShiftEquivalence(t *testing.T) {
	text := "equivalence"
	if a, b := caesar.Transform(text, 27, domain.Encrypt), caesar.Transform(text, 1, domain.Encrypt); a != b {
		t.Errorf("shift 27 produced %q, shift 1 produced %q", a, b)
	}
	if a, b := caesar.Transform(text, -1, domain.Encrypt), caesar.Transform(text, 25, domain.Encrypt); a != b {
		t.Errorf("shift -1 produced %q, shift 25 produced %q", a, b)
	}
}
