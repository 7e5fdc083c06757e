// Package main provides the arbiter CLI tool for replaying, validating and
// exercising PGN game records.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
