// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package models

// AggregateSnapshot is the durable form of the running attack totals.
// UniqueIPs and UniqueCountries are kept in first-seen order.
type AggregateSnapshot struct {
	TotalAttacks    int      `json:"total_attacks"`
	UniqueIPs       []string `json:"unique_ips"`
	UniqueCountries []string `json:"unique_countries"`
	Timestamps      []string `json:"timestamps"`
}

// EmptySnapshot returns the default snapshot with non-nil slices so it
// encodes as empty arrays rather than null.
func EmptySnapshot() AggregateSnapshot {
	return AggregateSnapshot{
		UniqueIPs:       []string{},
		UniqueCountries: []string{},
		Timestamps:      []string{},
	}
}

// Normalize replaces nil slices with empty ones.
func (s *AggregateSnapshot) Normalize() {
	if s.UniqueIPs == nil {
		s.UniqueIPs = []string{}
	}
	if s.UniqueCountries == nil {
		s.UniqueCountries = []string{}
	}
	if s.Timestamps == nil {
		s.Timestamps = []string{}
	}
}

// Clone returns a deep copy.
func (s *AggregateSnapshot) Clone() AggregateSnapshot {
	return AggregateSnapshot{
		TotalAttacks:    s.TotalAttacks,
		UniqueIPs:       append([]string{}, s.UniqueIPs...),
		UniqueCountries: append([]string{}, s.UniqueCountries...),
		Timestamps:      append([]string{}, s.Timestamps...),
	}
}
