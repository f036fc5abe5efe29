package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"textkit/internal/domain"
	"textkit/internal/freq"
)

// freq <file|->: count word frequencies in a document.
func freqCmd() *cobra.Command {
	var (
		topN   int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "freq <file>",
		Short: "Count word frequencies in a document",
		Long: `Count how often each word appears in a document and print the words
sorted by descending count. Words are lowercased and punctuation is
treated as a separator. Pass "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := loadInput(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if strings.TrimSpace(text) == "" {
				// Machine consumers still get JSON when there is nothing to count.
				if asJSON {
					return writeJSON(cmd, domain.FrequencyTable{})
				}
				fmt.Fprintln(out, "No text found in document.")
				return nil
			}

			table := freq.Count(text)
			if len(table) == 0 {
				if asJSON {
					return writeJSON(cmd, table)
				}
				fmt.Fprintln(out, "No words found after processing.")
				return nil
			}

			n := appCtx.Config.Frequency.Top
			if cmd.Flags().Changed("top") {
				n = topN
			}
			shown := freq.Top(table, n)

			if asJSON {
				return writeJSON(cmd, shown)
			}

			renderFrequency(out, shown, appCtx.Config.Output.Style)
			fmt.Fprintf(out, "%d words, %d distinct\n", table.TotalCount(), len(table))
			return nil
		},
	}

	cmd.Flags().IntVarP(&topN, "top", "n", 0, "show only the N most frequent words (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write results as JSON")
	return cmd
}

// loadInput extracts document text, or reads stdin when path is "-".
func loadInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return appCtx.Extract.Text(path)
}
