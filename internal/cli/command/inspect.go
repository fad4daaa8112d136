package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/snapstore-go/internal/storage/snapshot"
)

// InspectCommand decodes a snapshot filename and reports on the file.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Decode a snapshot filename and check the file is readable",
		ArgsUsage: "<filename>",
		Action:    runInspect,
	}
}

type inspectResult struct {
	metadataRow
	Readable bool   `json:"readable"`
	Error    string `json:"error,omitempty"`
}

func runInspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one filename argument")
	}
	name := c.Args().First()

	m, ok := snapshot.ParseFilename(name)
	if !ok {
		return fmt.Errorf("not a snapshot filename: %q", name)
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}

	res := inspectResult{metadataRow: toRows([]snapshot.Metadata{m})[0]}
	if verr := store.VerifySnapshot(m); verr != nil {
		res.Error = verr.Error()
	} else {
		res.Readable = true
	}

	flags := ParseGlobalFlags(c)
	if flags.Output == "json" {
		return printJSON(c.App.Writer, res)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Processor ID: %d\n", m.ProcessorID)
	fmt.Fprintf(w, "Sequence Nr:  %d\n", m.SequenceNr)
	fmt.Fprintf(w, "Timestamp:    %d\n", m.Timestamp)
	fmt.Fprintf(w, "Filename:     %s\n", m.Filename())
	if res.Readable {
		fmt.Fprintln(w, "Readable:     yes")
	} else {
		fmt.Fprintf(w, "Readable:     no (%s)\n", res.Error)
	}
	return nil
}
