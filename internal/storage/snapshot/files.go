package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	defaultFilePerm = 0600
	defaultDirPerm  = 0750
)

// files provides scoped stream access to one snapshot directory. It owns
// nothing beyond the path; the directory itself is the durable state.
type files struct {
	dir string
}

// ensure creates the snapshot directory, including parents.
func (f files) ensure() error {
	if err := os.MkdirAll(f.dir, defaultDirPerm); err != nil {
		return fmt.Errorf("snapshot: create dir: %w", err)
	}
	return nil
}

// list returns the names of all regular files in the directory.
func (f files) list() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// writeSnapshot opens the file identified by m, hands the stream to write,
// and closes it on every exit path. A failure from write propagates after
// cleanup and wins over any close error.
func (f files) writeSnapshot(m Metadata, write func(io.Writer) error) error {
	name := m.Filename()
	file, err := os.OpenFile(filepath.Join(f.dir, name), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, defaultFilePerm)
	if err != nil {
		return fmt.Errorf("snapshot: open %s: %w", name, err)
	}

	writeErr := write(file)
	if writeErr == nil {
		writeErr = file.Sync()
	}
	closeErr := file.Close()

	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("snapshot: close %s: %w", name, closeErr)
	}
	return nil
}

// readSnapshot is the input counterpart of writeSnapshot, with the same
// guaranteed-close contract.
func (f files) readSnapshot(m Metadata, read func(io.Reader) error) error {
	name := m.Filename()
	file, err := os.Open(filepath.Join(f.dir, name))
	if err != nil {
		return fmt.Errorf("snapshot: open %s: %w", name, err)
	}
	defer file.Close()

	return read(file)
}
