package freq_test

import (
	"reflect"
	"testing"

	"textkit/internal/domain"
	"textkit/internal/freq"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.FrequencyTable
	}{
		{
			name: "counts and sorts descending",
			text: "the cat sat on the mat the cat ran",
			want: domain.FrequencyTable{
				{Word: "the", Count: 3},
				{Word: "cat", Count: 2},
				{Word: "sat", Count: 1},
				{Word: "on", Count: 1},
				{Word: "mat", Count: 1},
				{Word: "ran", Count: 1},
			},
		},
		{
			name: "ties keep first-encounter order",
			text: "b a b a c",
			want: domain.FrequencyTable{
				{Word: "b", Count: 2},
				{Word: "a", Count: 2},
				{Word: "c", Count: 1},
			},
		},
		{
			name: "case and punctuation fold together",
			text: "Hello, hello! HELLO?",
			want: domain.FrequencyTable{
				{Word: "hello", Count: 3},
			},
		},
		{
			name: "accented words are distinct from plain ones",
			text: "Café café cafe",
			want: domain.FrequencyTable{
				{Word: "café", Count: 2},
				{Word: "cafe", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := freq.Count(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Count(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "?!... ---"} {
		got := freq.Count(text)
		if got == nil {
			t.Fatalf("Count(%q) = nil, want empty table", text)
		}
		if len(got) != 0 {
			t.Errorf("Count(%q) has %d entries, want 0", text, len(got))
		}
	}
}

func TestCountTotalMatchesTokenCount(t *testing.T) {
	text := "one two two three three three"
	table := freq.Count(text)
	if got, want := table.TotalCount(), 6; got != want {
		t.Errorf("TotalCount() = %d, want %d", got, want)
	}
}

func TestCountIsDeterministic(t *testing.T) {
	text := "red green blue red blue green red"
	first := freq.Count(text)
	for i := 0; i < 10; i++ {
		if again := freq.Count(text); !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d produced %v, want %v", i, again, first)
		}
	}
}

func TestTop(t *testing.T) {
	table := freq.Count("a a a b b c")

	if got := freq.Top(table, 2); len(got) != 2 || got[0].Word != "a" || got[1].Word != "b" {
		t.Errorf("Top(table, 2) = %v, want [a b]", got)
	}
	if got := freq.Top(table, 0); len(got) != len(table) {
		t.Errorf("Top(table, 0) truncated to %d entries, want %d", len(got), len(table))
	}
	if got := freq.Top(table, 10); len(got) != len(table) {
		t.Errorf("Top(table, 10) = %d entries, want %d", len(got), len(table))
	}
}
