package main

import (
	"os"

	"github.com/ledgersim-dev/ledgersim/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
