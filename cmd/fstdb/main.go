package main

import (
	"os"

	"github.com/fastkv/fstdb/cmd/fstdb/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
