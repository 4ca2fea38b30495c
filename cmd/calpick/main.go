// Package main is the entry point for the calpick CLI tool.
package main

import (
	"os"

	"github.com/calpick/calpick/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
