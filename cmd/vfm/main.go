// Package main is the entry point for the vfm CLI tool.
package main

import (
	"os"

	"github.com/samverdant/vfm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
