// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package aggregate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/tomtom215/honeyscope/internal/models"
)

// FileStore keeps the snapshot as a JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path. Parent directories are
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the snapshot file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the snapshot file.
func (s *FileStore) Load(_ context.Context) (models.AggregateSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.AggregateSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return models.AggregateSnapshot{}, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	return decodeSnapshot(data)
}

// Save writes the snapshot to a temporary file in the same directory and
// renames it over the target, so readers never observe a partial file.
func (s *FileStore) Save(_ context.Context, snap *models.AggregateSnapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec // write error takes precedence
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close() //nolint:errcheck,gosec // sync error takes precedence
		return fmt.Errorf("sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// Close is a no-op for FileStore.
func (s *FileStore) Close() error {
	return nil
}

func decodeSnapshot(data []byte) (models.AggregateSnapshot, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return models.AggregateSnapshot{}, fmt.Errorf("%w: empty document", ErrCorruptSnapshot)
	}
	var snap models.AggregateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.AggregateSnapshot{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if snap.TotalAttacks < 0 {
		return models.AggregateSnapshot{}, fmt.Errorf("%w: negative total_attacks", ErrCorruptSnapshot)
	}
	snap.Normalize()
	return snap, nil
}
