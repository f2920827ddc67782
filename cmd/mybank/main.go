package main

import (
	"os"

	"github.com/mybank-dev/mybank/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
