// Package main provides the entry point for snapstore-cli.
//
// snapstore-cli inspects a snapshot directory offline: listing indexed
// snapshots, decoding filenames, and verifying files are readable.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/snapstore-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
