package main

import (
	"os"

	"github.com/rsdkit/rsd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
