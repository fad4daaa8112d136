package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/snapstore-go/internal/storage/snapshot"
)

// VerifyCommand checks that indexed snapshots decode cleanly.
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Verify that snapshots in the directory are readable",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "processor",
				Aliases: []string{"p"},
				Usage:   "Only verify snapshots for this processor ID",
			},
		},
		Action: runVerify,
	}
}

type verifyResult struct {
	metadataRow
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func runVerify(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}

	entries := store.Snapshots()
	results := make([]verifyResult, 0, len(entries))
	bad := 0
	for _, m := range entries {
		if c.IsSet("processor") && m.ProcessorID != c.Uint64("processor") {
			continue
		}
		res := verifyResult{metadataRow: toRows([]snapshot.Metadata{m})[0]}
		if verr := store.VerifySnapshot(m); verr != nil {
			res.Error = verr.Error()
			bad++
		} else {
			res.OK = true
		}
		results = append(results, res)
	}

	flags := ParseGlobalFlags(c)
	if flags.Output == "json" {
		if err := printJSON(c.App.Writer, results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.OK {
				fmt.Fprintf(c.App.Writer, "ok    %s\n", res.Filename)
			} else {
				fmt.Fprintf(c.App.Writer, "BAD   %s: %s\n", res.Filename, res.Error)
			}
		}
		fmt.Fprintf(c.App.Writer, "%d snapshots, %d unreadable\n", len(results), bad)
	}

	if bad > 0 {
		return cli.Exit(fmt.Sprintf("%d unreadable snapshots", bad), 1)
	}
	return nil
}
