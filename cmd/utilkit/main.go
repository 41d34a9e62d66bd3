package main

import (
	"os"

	"github.com/msto63/utilkit/cmd/utilkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
