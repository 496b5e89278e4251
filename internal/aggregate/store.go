// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package aggregate

import (
	"context"
	"errors"
	"sync"

	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/metrics"
	"github.com/tomtom215/honeyscope/internal/models"
)

// DefaultTimestampCap bounds the persisted timestamp history.
const DefaultTimestampCap = 50000

// Store holds the running attack aggregates.
type Store struct {
	mu            sync.Mutex
	snap          models.AggregateSnapshot
	ips           map[string]struct{}
	countries     map[string]struct{}
	countryCounts map[string]int
	timestampCap  int
	version       uint64

	persistMu    sync.Mutex
	savedVersion uint64
	persist      SnapshotStore
}

// New loads the durable snapshot from persist and returns a ready Store.
// A missing or corrupt snapshot is replaced with the empty default and
// written back; other load errors are logged and the Store starts empty.
// timestampCap <= 0 selects DefaultTimestampCap.
func New(ctx context.Context, persist SnapshotStore, timestampCap int) *Store {
	if timestampCap <= 0 {
		timestampCap = DefaultTimestampCap
	}
	s := &Store{
		countryCounts: make(map[string]int),
		timestampCap:  timestampCap,
		persist:       persist,
	}

	snap, err := persist.Load(ctx)
	switch {
	case err == nil:
		s.restore(snap)
		logging.Info().
			Int("total_attacks", snap.TotalAttacks).
			Int("unique_ips", len(s.snap.UniqueIPs)).
			Msg("Aggregate snapshot loaded")
	case errors.Is(err, ErrSnapshotNotFound), errors.Is(err, ErrCorruptSnapshot):
		logging.Warn().Err(err).Msg("Aggregate snapshot unusable, reinitializing to defaults")
		metrics.SnapshotSelfHeals.Inc()
		s.restore(models.EmptySnapshot())
		s.version++
		s.save(ctx)
	default:
		logging.Error().Err(err).Msg("Failed to load aggregate snapshot, starting empty")
		s.restore(models.EmptySnapshot())
	}

	metrics.TotalAttacks.Set(float64(s.snap.TotalAttacks))
	return s
}

// restore replaces in-memory durable state with snap. Caller holds mu or
// has exclusive access.
func (s *Store) restore(snap models.AggregateSnapshot) {
	snap.Normalize()
	if over := len(snap.Timestamps) - s.timestampCap; over > 0 {
		snap.Timestamps = append([]string{}, snap.Timestamps[over:]...)
	}

	s.snap = snap
	s.ips = make(map[string]struct{}, len(snap.UniqueIPs))
	for _, ip := range snap.UniqueIPs {
		s.ips[ip] = struct{}{}
	}
	s.countries = make(map[string]struct{}, len(snap.UniqueCountries))
	for _, c := range snap.UniqueCountries {
		s.countries[c] = struct{}{}
	}
}

// Apply folds ev into the in-memory aggregates if it is an attack and
// reports whether they changed. The snapshot backend is not touched; follow
// a true result with Persist.
func (s *Store) Apply(ev *models.EnrichedEvent) bool {
	if !ev.IsAttack() {
		return false
	}

	s.mu.Lock()
	s.snap.TotalAttacks++
	if _, seen := s.ips[ev.SourceAddress]; !seen && ev.SourceAddress != "" {
		s.ips[ev.SourceAddress] = struct{}{}
		s.snap.UniqueIPs = append(s.snap.UniqueIPs, ev.SourceAddress)
	}
	if ev.Country != "" {
		if _, seen := s.countries[ev.Country]; !seen {
			s.countries[ev.Country] = struct{}{}
			s.snap.UniqueCountries = append(s.snap.UniqueCountries, ev.Country)
		}
		s.countryCounts[ev.Country]++
	}
	if !ev.Timestamp.IsZero() {
		s.appendTimestamp(ev.Timestamp.UTC().Format(models.TimestampLayout))
	}
	s.version++
	total := s.snap.TotalAttacks
	s.mu.Unlock()

	metrics.TotalAttacks.Set(float64(total))
	return true
}

// Persist writes the current aggregates to the snapshot backend unless a
// newer state has already been written. Concurrent callers coalesce.
// Failures are logged and counted, never returned.
func (s *Store) Persist(ctx context.Context) {
	s.save(ctx)
}

// appendTimestamp must be called with mu held.
func (s *Store) appendTimestamp(ts string) {
	if len(s.snap.Timestamps) >= s.timestampCap {
		drop := len(s.snap.Timestamps) - s.timestampCap + 1
		// Shift in place to keep the backing array bounded.
		n := copy(s.snap.Timestamps, s.snap.Timestamps[drop:])
		s.snap.Timestamps = s.snap.Timestamps[:n]
	}
	s.snap.Timestamps = append(s.snap.Timestamps, ts)
}

// save writes the current state unless a newer state has already been
// written.
func (s *Store) save(ctx context.Context) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	version := s.version
	if version <= s.savedVersion {
		s.mu.Unlock()
		return
	}
	snap := s.snap.Clone()
	s.mu.Unlock()

	err := s.persist.Save(ctx, &snap)
	metrics.RecordSnapshotWrite(err)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to persist aggregate snapshot")
		return
	}
	s.savedVersion = version
}

// CountryCounts returns a copy of the in-memory per-country attack counts.
func (s *Store) CountryCounts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.countryCounts))
	for k, v := range s.countryCounts {
		out[k] = v
	}
	return out
}

// Snapshot returns a copy of the durable aggregate state.
func (s *Store) Snapshot() models.AggregateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Reset clears the in-memory country counts. Durable totals are kept.
func (s *Store) Reset() {
	s.mu.Lock()
	s.countryCounts = make(map[string]int)
	s.mu.Unlock()
	logging.Info().Msg("In-memory country counts reset")
}

// ResetDurable clears both the durable totals and the in-memory country
// counts, then persists the empty snapshot.
func (s *Store) ResetDurable(ctx context.Context) models.AggregateSnapshot {
	s.mu.Lock()
	s.restore(models.EmptySnapshot())
	s.countryCounts = make(map[string]int)
	s.version++
	s.mu.Unlock()

	metrics.TotalAttacks.Set(0)
	s.save(ctx)
	logging.Warn().Msg("Durable aggregate snapshot reset")
	return s.Snapshot()
}

// Close flushes the latest state and closes the snapshot store.
func (s *Store) Close(ctx context.Context) error {
	s.save(ctx)
	return s.persist.Close()
}
