// Package main is the entry point for the RestaurApp CLI.
// RestaurApp CLI provides command-line access to the RestaurApp backend,
// covering the daily workflow of waiters, kitchen staff, and cashiers.
package main

import (
	"os"

	"github.com/restaurapp/restaurapp-cli/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
