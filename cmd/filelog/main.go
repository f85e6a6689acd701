// Package main is the entry point for the filelog CLI.
package main

import (
	"os"

	"github.com/LixenWraith/filelog/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
