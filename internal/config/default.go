package config

import "time"

// Default configuration values.
const (
	DefaultJournalDir  = "/var/lib/snapstore/journal"
	DefaultSnapshotDir = "snapshots"
	DefaultSaveTimeout = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Journal: JournalSection{
			Dir: DefaultJournalDir,
		},
		Snapshot: SnapshotSection{
			Dir:         DefaultSnapshotDir,
			SaveTimeout: DefaultSaveTimeout,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
