// Package main is the entry point for the ringsky CLI.
package main

import (
	"os"

	"ringsky/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
