package command

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/snapstore-go/internal/config"
	"github.com/yndnr/snapstore-go/internal/infra/confloader"
	"github.com/yndnr/snapstore-go/internal/storage/snapshot"
	"github.com/yndnr/snapstore-go/internal/telemetry/logger"
)

// loadConfig merges defaults, an optional config file, environment, and
// flag overrides into the effective configuration.
func loadConfig(c *cli.Context) (*config.Config, error) {
	flags := ParseGlobalFlags(c)

	cfg := config.Default()
	loader := confloader.NewLoader(confloader.WithConfigFile(flags.Config))
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	overrides := map[string]any{}
	if flags.JournalDir != "" {
		overrides["journal.dir"] = flags.JournalDir
	}
	if flags.SnapshotDir != "" {
		overrides["snapshot.dir"] = flags.SnapshotDir
	}
	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openStore builds and initializes a read-side store over the configured
// snapshot directory.
func openStore(c *cli.Context) (*snapshot.Store, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg, ParseGlobalFlags(c))
	if err != nil {
		return nil, err
	}

	storeCfg := snapshot.DefaultConfig(cfg.SnapshotDir())
	storeCfg.SaveTimeout = cfg.Snapshot.SaveTimeout
	storeCfg.Logger = log
	store, err := snapshot.NewStore(storeCfg)
	if err != nil {
		return nil, err
	}
	if err := store.Initialize(); err != nil {
		return nil, err
	}
	return store, nil
}

// newLogger builds the logger from the log section, to stderr so command
// output stays parseable. --verbose forces debug level.
func newLogger(cfg *config.Config, flags *GlobalFlags) (logger.Logger, error) {
	level := cfg.Log.Level
	if flags.Verbose {
		level = "debug"
	}
	return logger.New(logger.Config{
		Level:  level,
		Format: cfg.Log.Format,
	})
}

// metadataRow is the JSON output shape for a snapshot entry.
type metadataRow struct {
	ProcessorID uint64 `json:"processor_id"`
	SequenceNr  uint64 `json:"sequence_nr"`
	Timestamp   int64  `json:"timestamp"`
	Filename    string `json:"filename"`
}

func toRows(entries []snapshot.Metadata) []metadataRow {
	rows := make([]metadataRow, 0, len(entries))
	for _, m := range entries {
		rows = append(rows, metadataRow{
			ProcessorID: m.ProcessorID,
			SequenceNr:  m.SequenceNr,
			Timestamp:   m.Timestamp,
			Filename:    m.Filename(),
		})
	}
	return rows
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printMetadataTable writes snapshot entries as an aligned table.
func printMetadataTable(w io.Writer, entries []snapshot.Metadata) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROCESSOR\tSEQUENCE\tTIMESTAMP\tFILENAME")
	for _, m := range entries {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", m.ProcessorID, m.SequenceNr, m.Timestamp, m.Filename())
	}
	return tw.Flush()
}
