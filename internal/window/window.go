// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

// Package window selects the per-source event window used for feature
// extraction.
//
// FilterBySource is the pure selection applied to whatever pool a caller
// supplies. History is one such pool: a time-bounded per-source buffer used
// by the streaming consumer, which has no upstream window of its own.
package window

import (
	"sync"
	"time"

	"github.com/tomtom215/honeyscope/internal/models"
)

// FilterBySource returns the events in pool whose source address equals
// current's, preserving pool order. The result never aliases pool.
//
//nolint:gocritic // Event is passed by value as an immutable record
func FilterBySource(current models.Event, pool []models.Event) []models.Event {
	out := make([]models.Event, 0, len(pool))
	for i := range pool {
		if pool[i].SourceAddress == current.SourceAddress {
			out = append(out, pool[i])
		}
	}
	return out
}

// DefaultMaxPerSource bounds memory for a single noisy source.
const DefaultMaxPerSource = 1000

// History keeps recent events per source address, dropping anything older
// than the configured window. Safe for concurrent use.
type History struct {
	mu           sync.Mutex
	window       time.Duration
	maxPerSource int
	now          func() time.Time
	bySource     map[string][]models.Event
}

// NewHistory creates a History retaining events for window. maxPerSource <= 0
// selects DefaultMaxPerSource.
func NewHistory(window time.Duration, maxPerSource int) *History {
	if maxPerSource <= 0 {
		maxPerSource = DefaultMaxPerSource
	}
	return &History{
		window:       window,
		maxPerSource: maxPerSource,
		now:          time.Now,
		bySource:     make(map[string][]models.Event),
	}
}

// Observe records ev and returns a copy of its source's window, pruned to
// the retention period and including ev itself.
//
//nolint:gocritic // Event is passed by value as an immutable record
func (h *History) Observe(ev models.Event) []models.Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	cutoff := h.now().Add(-h.window)
	events := prune(h.bySource[ev.SourceAddress], cutoff)
	events = append(events, ev)
	if over := len(events) - h.maxPerSource; over > 0 {
		events = append(events[:0:0], events[over:]...)
	}
	h.bySource[ev.SourceAddress] = events

	return append([]models.Event(nil), events...)
}

// Sweep drops expired events from every source and removes empty sources.
// It returns the number of sources still tracked.
func (h *History) Sweep() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	cutoff := h.now().Add(-h.window)
	for src, events := range h.bySource {
		kept := prune(events, cutoff)
		if len(kept) == 0 {
			delete(h.bySource, src)
			continue
		}
		h.bySource[src] = kept
	}
	return len(h.bySource)
}

// Len returns the number of tracked sources.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.bySource)
}

// prune keeps events at or after cutoff. Events without a timestamp are
// treated as current.
func prune(events []models.Event, cutoff time.Time) []models.Event {
	kept := events[:0]
	for i := range events {
		ts := events[i].Timestamp
		if ts.IsZero() || !ts.Before(cutoff) {
			kept = append(kept, events[i])
		}
	}
	return kept
}
