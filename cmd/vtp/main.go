// Package main is the entry point for the vtp CLI tool.
package main

import (
	"os"

	"github.com/isobus-tools/vtpool/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
