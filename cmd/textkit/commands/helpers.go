package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// argsOrStdin joins the positional arguments with spaces, or reads all of
// stdin when none are given.
func argsOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
