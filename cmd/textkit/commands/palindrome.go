package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"textkit/internal/palindrome"
)

// palindrome [text...]: check the arguments, or stdin when none are given.
func palindromeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "palindrome [text...]",
		Short: "Check whether text is a palindrome",
		Long: `Check whether text reads the same forwards and backwards, ignoring
case, spacing and punctuation. Text is taken from the arguments, or from
stdin when none are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := argsOrStdin(cmd, args)
			if err != nil {
				return err
			}

			verdict := palindrome.Check(text)
			if asJSON {
				return writeJSON(cmd, verdict)
			}

			out := cmd.OutOrStdout()
			enabled := shouldColorize(out, appCtx.Config.Output.Color)
			if verdict.Palindrome {
				fmt.Fprintln(out, colorize("Palindrome ✓", ansiGreen, enabled))
			} else {
				fmt.Fprintln(out, colorize("Not a palindrome ✗", ansiRed, enabled))
			}
			if verdict.Normalized != "" {
				fmt.Fprintf(out, "normalized: %s\n", verdict.Normalized)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write the verdict as JSON")
	return cmd
}
