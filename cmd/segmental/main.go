package main

import (
	"os"

	"github.com/segmental-dev/segmental/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
