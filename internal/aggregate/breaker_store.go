// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package aggregate

import (
	"context"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/metrics"
	"github.com/tomtom215/honeyscope/internal/models"
)

// BreakerConfig controls the snapshot write circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive failed writes that
	// opens the breaker.
	FailureThreshold uint32

	// Timeout is how long the breaker stays open before a trial write.
	Timeout time.Duration
}

// DefaultBreakerConfig returns the breaker settings used when none are
// configured.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{FailureThreshold: 5, Timeout: 30 * time.Second}
}

// BreakerStore wraps a SnapshotStore so repeated write failures stop
// hitting the backend for a while. While open, Save returns
// gobreaker.ErrOpenState. The Store only ever saves its latest state, so a
// skipped write is caught up by the next one.
type BreakerStore struct {
	next SnapshotStore
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// NewBreakerStore wraps next.
func NewBreakerStore(next SnapshotStore, cfg BreakerConfig) *BreakerStore {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultBreakerConfig().Timeout
	}

	settings := gobreaker.Settings{
		Name:        "snapshot-store",
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SnapshotBreakerState.Set(float64(to))
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Snapshot write breaker changed state")
		},
	}

	return &BreakerStore{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

// Load reads through without breaker protection.
func (s *BreakerStore) Load(ctx context.Context) (models.AggregateSnapshot, error) {
	return s.next.Load(ctx)
}

// Save writes through the breaker.
func (s *BreakerStore) Save(ctx context.Context, snap *models.AggregateSnapshot) error {
	_, err := s.cb.Execute(func() (struct{}, error) {
		return struct{}{}, s.next.Save(ctx, snap)
	})
	return err
}

// State returns the breaker state name.
func (s *BreakerStore) State() string {
	return s.cb.State().String()
}

// Close closes the wrapped store.
func (s *BreakerStore) Close() error {
	return s.next.Close()
}
