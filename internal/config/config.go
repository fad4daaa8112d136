// Package config defines the snapstore configuration structure.
package config

import (
	"path/filepath"
	"time"
)

// Config is the root configuration for the snapshot store and its tooling.
type Config struct {
	Journal  JournalSection  `koanf:"journal"`
	Snapshot SnapshotSection `koanf:"snapshot"`
	Log      LogSection      `koanf:"log"`
}

// JournalSection locates the hosting journal's data.
type JournalSection struct {
	// Dir is the base journal directory.
	Dir string `koanf:"dir"`
}

// SnapshotSection configures snapshot storage.
type SnapshotSection struct {
	// Dir is the snapshot directory. A relative path is resolved against
	// the journal directory.
	Dir string `koanf:"dir"`

	// SaveTimeout bounds the caller-side wait for one snapshot save.
	SaveTimeout time.Duration `koanf:"save_timeout"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SnapshotDir returns the effective snapshot directory, resolving a
// relative configured path against the journal directory.
func (c *Config) SnapshotDir() string {
	if filepath.IsAbs(c.Snapshot.Dir) {
		return c.Snapshot.Dir
	}
	return filepath.Join(c.Journal.Dir, c.Snapshot.Dir)
}
