// Package command provides CLI command definitions for snapstore-cli.
//
// Commands operate directly on a snapshot directory: they build a store,
// rebuild its index from the directory listing, and report on what they
// find. No running journal process is required.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/snapstore-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "snapstore-cli",
		Usage:   "snapstore snapshot directory inspection tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ListCommand(),
			InspectCommand(),
			VerifyCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			EnvVars: []string{"SNAPSTORE_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "journal-dir",
			Usage: "Journal base directory",
		},
		&cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Snapshot directory (relative paths resolve against the journal directory)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	Config      string
	JournalDir  string
	SnapshotDir string
	Output      string
	Verbose     bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:      c.String("config"),
		JournalDir:  c.String("journal-dir"),
		SnapshotDir: c.String("snapshot-dir"),
		Output:      c.String("output"),
		Verbose:     c.Bool("verbose"),
	}
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
