// Package main is the entry point for the rms CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/WeddyNkatha265/rental-management/internal/cli"
)

func main() {
	// Local .env files are a convenience; absence is not an error.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
