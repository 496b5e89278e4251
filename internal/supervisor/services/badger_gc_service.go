// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package services

import (
	"context"
	"time"

	"github.com/tomtom215/honeyscope/internal/logging"
)

// ValueLogCollector is satisfied by *aggregate.BadgerStore.
type ValueLogCollector interface {
	RunValueLogGC(discardRatio float64) error
}

// BadgerGCService periodically reclaims value-log space. Each snapshot
// save rewrites the same key, so stale versions accumulate quickly.
type BadgerGCService struct {
	store        ValueLogCollector
	interval     time.Duration
	discardRatio float64
}

// NewBadgerGCService runs GC on store every interval.
func NewBadgerGCService(store ValueLogCollector, interval time.Duration) *BadgerGCService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &BadgerGCService{store: store, interval: interval, discardRatio: 0.5}
}

// Serve implements suture.Service. GC errors are logged, never returned.
func (b *BadgerGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := b.store.RunValueLogGC(b.discardRatio); err != nil {
				logging.Warn().Err(err).Msg("Badger value log GC failed")
			}
		}
	}
}

func (b *BadgerGCService) String() string {
	return "badger-gc"
}
