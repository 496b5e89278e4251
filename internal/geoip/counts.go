// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package geoip

import "github.com/tomtom215/honeyscope/internal/models"

// CountryCounts tallies resolvable countries over a batch of events.
// Events whose address does not resolve are skipped.
func CountryCounts(l Lookuper, events []models.Event) map[string]int {
	counts := make(map[string]int)
	for i := range events {
		if events[i].SourceAddress == "" {
			continue
		}
		if code, ok := l.LookupCountry(events[i].SourceAddress); ok {
			counts[code]++
		}
	}
	return counts
}
