package main

import (
	"os"

	"textkit/cmd/textkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
