// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package aggregate

import (
	"context"
	"errors"

	"github.com/tomtom215/honeyscope/internal/models"
)

var (
	// ErrSnapshotNotFound is returned by Load when no snapshot has been written.
	ErrSnapshotNotFound = errors.New("aggregate snapshot not found")

	// ErrCorruptSnapshot is returned by Load when the stored snapshot is
	// empty or cannot be decoded.
	ErrCorruptSnapshot = errors.New("aggregate snapshot corrupt")
)

// SnapshotStore persists AggregateSnapshots.
type SnapshotStore interface {
	Load(ctx context.Context) (models.AggregateSnapshot, error)
	Save(ctx context.Context, snap *models.AggregateSnapshot) error
	Close() error
}
