// Package main is the entry point for the datapeek CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/datapeek/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
