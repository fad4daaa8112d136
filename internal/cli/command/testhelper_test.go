package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

// newSnapshotDir creates a journal directory with a snapshots/ subdirectory
// containing the given files, and returns the journal path.
func newSnapshotDir(t *testing.T, files map[string][]byte) string {
	t.Helper()

	journal := t.TempDir()
	dir := filepath.Join(journal, "snapshots")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("mkdir snapshots: %v", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return journal
}

// runApp runs the CLI against a journal directory and captures stdout.
func runApp(t *testing.T, journalDir string, args ...string) (string, error) {
	t.Helper()

	app := App()
	var buf bytes.Buffer
	app.Writer = &buf
	app.ErrWriter = &buf
	// Keep exit-coded errors from terminating the test process.
	app.ExitErrHandler = func(*cli.Context, error) {}

	full := append([]string{"snapstore-cli", "--journal-dir", journalDir}, args...)
	err := app.Run(full)
	return buf.String(), err
}
