// Package storage persists the expense records to a single JSON file slot.
//
// The slot is written through on every store mutation and read once at
// startup. There is no versioning and no migration: the slot is a plain JSON
// array of records.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spendpad/spendpad/internal/expense"
	"github.com/spendpad/spendpad/internal/logging"
)

// FileStore reads and writes the expense slot at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the given slot path. The path's
// directory is created lazily on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the slot path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the persisted records. A missing slot yields an empty list. A
// corrupt slot also yields an empty list: the damage is logged but never
// surfaced, so a broken file degrades to a fresh start instead of an unusable
// application.
func (f *FileStore) Load(ctx context.Context) []expense.Record {
	logger := logging.FromContext(ctx).With().Str("component", "storage").Logger()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		logger.Warn().Err(err).Str("path", f.path).Msg("could not read expense data, starting empty")
		return nil
	}

	var records []expense.Record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn().Err(err).Str("path", f.path).Msg("expense data is corrupt, starting empty")
		return nil
	}
	return records
}

// Save writes the full record list to the slot. The write goes to a temp file
// in the same directory followed by a rename, so a crash mid-write leaves the
// previous slot intact.
func (f *FileStore) Save(ctx context.Context, records []expense.Record) error {
	if records == nil {
		records = []expense.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal expense data: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write expense data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace expense data: %w", err)
	}

	logger := logging.FromContext(ctx)
	logger.Debug().
		Str("component", "storage").
		Int("records", len(records)).
		Str("path", f.path).
		Msg("expense data saved")
	return nil
}
