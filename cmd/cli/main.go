// Package main is the entry point for the rent-cost CLI.
package main

import (
	"os"

	"rent-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
