package commands

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"textkit/internal/domain"
)

// renderFrequency writes rows in the configured style. The bordered table
// is reserved for terminals; pipes always get the plain listing.
func renderFrequency(w io.Writer, rows domain.FrequencyTable, style string) {
	if style == "table" && isTerminal(w) {
		renderFrequencyTable(w, rows)
		return
	}
	renderFrequencyPlain(w, rows)
}

func renderFrequencyTable(w io.Writer, rows domain.FrequencyTable) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Word", "Count"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.Word, row.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	fmt.Fprintln(w, tw.Render())
}

// renderFrequencyPlain prints a dot-padded word/count listing with counts
// aligned to a column past the longest word.
func renderFrequencyPlain(w io.Writer, rows domain.FrequencyTable) {
	maxWord := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(row.Word); n > maxWord {
			maxWord = n
		}
	}
	countColumn := maxWord + 30

	for _, row := range rows {
		dots := countColumn - utf8.RuneCountInString(row.Word) - 1
		if dots < 1 {
			dots = 1
		}
		fmt.Fprintf(w, "%s %s %d\n", row.Word, strings.Repeat(".", dots), row.Count)
	}
}
