package command

import (
	"github.com/urfave/cli/v2"
)

// ListCommand lists indexed snapshots.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List snapshots in the snapshot directory",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "processor",
				Aliases: []string{"p"},
				Usage:   "Only list snapshots for this processor ID",
			},
		},
		Action: runList,
	}
}

func runList(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}

	entries := store.Snapshots()
	if c.IsSet("processor") {
		pid := c.Uint64("processor")
		filtered := entries[:0]
		for _, m := range entries {
			if m.ProcessorID == pid {
				filtered = append(filtered, m)
			}
		}
		entries = filtered
	}

	flags := ParseGlobalFlags(c)
	if flags.Output == "json" {
		return printJSON(c.App.Writer, toRows(entries))
	}
	return printMetadataTable(c.App.Writer, entries)
}
