package freq

import (
	"sort"

	"textkit/internal/domain"
	"textkit/internal/textnorm"
)

// Count tallies the words in text and returns them sorted by descending
// count. Words with equal counts keep first-encounter order.
func Count(text string) domain.FrequencyTable {
	words := textnorm.Tokenize(text)

	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, w := range words {
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	table := make(domain.FrequencyTable, 0, len(order))
	for _, w := range order {
		table = append(table, domain.WordCount{Word: w, Count: counts[w]})
	}

	// Stable sort keeps encounter order across equal counts.
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})

	return table
}

// Top returns the first n entries of table, or the whole table when n is
// zero or exceeds its length.
func Top(table domain.FrequencyTable, n int) domain.FrequencyTable {
	if n <= 0 || n >= len(table) {
		return table
	}
	return table[:n]
}
