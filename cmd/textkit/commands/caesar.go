package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"textkit/internal/caesar"
	"textkit/internal/domain"
)

func caesarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Encrypt or decrypt text with a Caesar cipher",
	}
	cmd.AddCommand(caesarDirectionCmd(domain.Encrypt), caesarDirectionCmd(domain.Decrypt))
	return cmd
}

// caesar encrypt|decrypt [text...]: rotate ASCII letters by --shift.
func caesarDirectionCmd(dir domain.Direction) *cobra.Command {
	var shift int

	short := "Encrypt text by rotating its letters"
	if dir == domain.Decrypt {
		short = "Decrypt text encrypted with a Caesar cipher"
	}

	cmd := &cobra.Command{
		Use:   dir.String() + " [text...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := argsOrStdin(cmd, args)
			if err != nil {
				return err
			}

			n := appCtx.Config.Caesar.DefaultShift
			if cmd.Flags().Changed("shift") {
				n = shift
			}

			fmt.Fprintln(cmd.OutOrStdout(), caesar.Transform(text, n, dir))
			return nil
		},
	}

	cmd.Flags().IntVarP(&shift, "shift", "s", 3, "alphabet positions to rotate by")
	return cmd
}
