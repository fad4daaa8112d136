package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/yndnr/snapstore-go/internal/infra/confloader"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Journal.Dir != DefaultJournalDir {
		t.Errorf("journal.dir = %q, want %q", cfg.Journal.Dir, DefaultJournalDir)
	}
	if cfg.Snapshot.Dir != DefaultSnapshotDir {
		t.Errorf("snapshot.dir = %q, want %q", cfg.Snapshot.Dir, DefaultSnapshotDir)
	}
	if cfg.Snapshot.SaveTimeout != DefaultSaveTimeout {
		t.Errorf("snapshot.save_timeout = %v, want %v", cfg.Snapshot.SaveTimeout, DefaultSaveTimeout)
	}
	if err := Verify(cfg); err != nil {
		t.Errorf("Verify(Default()) error = %v", err)
	}
}

func TestVerify(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"missing journal dir", func(c *Config) { c.Journal.Dir = "" }, true},
		{"missing snapshot dir", func(c *Config) { c.Snapshot.Dir = "" }, true},
		{"zero save timeout", func(c *Config) { c.Snapshot.SaveTimeout = 0 }, true},
		{"negative save timeout", func(c *Config) { c.Snapshot.SaveTimeout = -time.Second }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, true},
		{"warning alias", func(c *Config) { c.Log.Level = "warning" }, false},
		{"empty log level", func(c *Config) { c.Log.Level = "" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := Verify(cfg)
			if (err != nil) != tc.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestSnapshotDir(t *testing.T) {
	cfg := Default()
	cfg.Journal.Dir = "/data/journal"

	cfg.Snapshot.Dir = "snapshots"
	if got, want := cfg.SnapshotDir(), filepath.Join("/data/journal", "snapshots"); got != want {
		t.Errorf("SnapshotDir() = %q, want %q", got, want)
	}

	cfg.Snapshot.Dir = "/mnt/snaps"
	if got := cfg.SnapshotDir(); got != "/mnt/snaps" {
		t.Errorf("SnapshotDir() = %q, want %q", got, "/mnt/snaps")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SNAPSTORE_JOURNAL_DIR", "/env/journal")
	t.Setenv("SNAPSTORE_SNAPSHOT_SAVE_TIMEOUT", "30s")

	cfg := Default()
	if err := confloader.NewLoader().Load(cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Journal.Dir != "/env/journal" {
		t.Errorf("journal.dir = %q, want %q", cfg.Journal.Dir, "/env/journal")
	}
	if cfg.Snapshot.SaveTimeout != 30*time.Second {
		t.Errorf("snapshot.save_timeout = %v, want 30s", cfg.Snapshot.SaveTimeout)
	}
	if cfg.Snapshot.Dir != DefaultSnapshotDir {
		t.Errorf("snapshot.dir = %q, want default %q", cfg.Snapshot.Dir, DefaultSnapshotDir)
	}
}
