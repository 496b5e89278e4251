// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package websocket

import "github.com/tomtom215/honeyscope/internal/models"

// DefaultBacklogSize is the number of recent events retained for backfill.
const DefaultBacklogSize = 1000

// Backlog is a fixed-capacity ring of recent events, oldest evicted first.
// It is not safe for concurrent use; the Hub guards it.
type Backlog struct {
	buf   []models.EnrichedEvent
	start int
	size  int
}

// NewBacklog returns an empty Backlog holding up to capacity events.
// capacity <= 0 selects DefaultBacklogSize.
func NewBacklog(capacity int) *Backlog {
	if capacity <= 0 {
		capacity = DefaultBacklogSize
	}
	return &Backlog{buf: make([]models.EnrichedEvent, capacity)}
}

// Add appends ev, evicting the oldest event when full.
//
//nolint:gocritic // stored by value
func (b *Backlog) Add(ev models.EnrichedEvent) {
	capacity := len(b.buf)
	if b.size < capacity {
		b.buf[(b.start+b.size)%capacity] = ev
		b.size++
		return
	}
	b.buf[b.start] = ev
	b.start = (b.start + 1) % capacity
}

// Last returns the newest n events in insertion order. n is clamped to
// [0, Len()].
func (b *Backlog) Last(n int) []models.EnrichedEvent {
	if n > b.size {
		n = b.size
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.EnrichedEvent, n)
	capacity := len(b.buf)
	first := b.start + b.size - n
	for i := 0; i < n; i++ {
		out[i] = b.buf[(first+i)%capacity]
	}
	return out
}

// Len returns the number of retained events.
func (b *Backlog) Len() int {
	return b.size
}

// Cap returns the backlog capacity.
func (b *Backlog) Cap() int {
	return len(b.buf)
}

// Clear drops every retained event.
func (b *Backlog) Clear() {
	clear(b.buf)
	b.start, b.size = 0, 0
}
