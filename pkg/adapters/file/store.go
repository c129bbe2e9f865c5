package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dylo101/DFA-Union/pkg/automaton"
)

// Store implements ports.Store against the local filesystem. The
// destination's extension picks the encoding.
type Store struct{}

// NewStore creates a filesystem store.
func NewStore() *Store {
	return &Store{}
}

// Save writes the union document atomically: it writes to a temporary file
// in the destination directory first, syncs via fsync, and then renames it
// over the destination.
func (s *Store) Save(ctx context.Context, dst string, p *automaton.Product) error {
	if dst == "" {
		return fmt.Errorf("destination cannot be empty")
	}

	data, err := automaton.FromProduct(p).Encode(automaton.FormatForPath(dst))
	if err != nil {
		return fmt.Errorf("encoding union document: %w", err)
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("ensuring output directory: %w", err)
	}

	// Temp file in the same directory so the final rename stays on one
	// filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(dst)+"-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // gone already when the rename succeeded
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	// Close before rename; an open file cannot be renamed on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	// On Windows os.Rename fails if the destination exists, so clear it
	// first and accept the tiny replacement window.
	if _, err := os.Stat(dst); err == nil {
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("removing existing output for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("renaming temp file to output: %w", err)
	}
	return nil
}
