package domain

// WordCount is one row of a frequency table: a normalized word and the
// number of times it occurred.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FrequencyTable is a word-frequency ranking ordered by count descending;
// words with equal counts keep their first-encounter order. Every word
// appears exactly once and every count is positive.
type FrequencyTable []WordCount

// TotalCount returns the sum of all counts, which equals the number of
// normalized tokens the table was built from.
func (t FrequencyTable) TotalCount() int {
	total := 0
	for _, wc := range t {
		total += wc.Count
	}
	return total
}

// PalindromeVerdict reports whether a string reads the same in both
// directions after normalization, along with the normalized form the
// comparison was computed from.
type PalindromeVerdict struct {
	Palindrome bool   `json:"palindrome"`
	Normalized string `json:"normalized"`
}

// Direction selects which way a Caesar transformation shifts.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}
