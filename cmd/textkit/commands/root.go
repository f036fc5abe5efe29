package commands

import (
	"github.com/spf13/cobra"

	"textkit/internal/app"
	"textkit/internal/config"
)

var (
	configPath string
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "textkit",
		Short: "Word frequency, palindrome and Caesar cipher toolkit",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipConfigLoad"] == "true" {
				return nil
			}
			cfg, _, _, err := config.Load(configPath)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/textkit/config.toml)")

	root.AddCommand(freqCmd(), palindromeCmd(), caesarCmd(), configCmd())
	return root.Execute()
}
