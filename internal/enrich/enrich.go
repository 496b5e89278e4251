// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

// Package enrich adds geolocation, a guaranteed timestamp and a stable
// identifier to classified events. Enrichment never fails: a geo miss
// leaves the country absent.
package enrich

import (
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/honeyscope/internal/geoip"
	"github.com/tomtom215/honeyscope/internal/models"
)

// Enricher fills in derived fields on EnrichedEvents.
type Enricher struct {
	geo geoip.Lookuper
	now func() time.Time
}

// New returns an Enricher resolving countries through geo. A nil geo
// leaves every country absent.
func New(geo geoip.Lookuper) *Enricher {
	return &Enricher{geo: geo, now: time.Now}
}

// Enrich sets the country code when the source address resolves, stamps
// the current UTC time when the event has no timestamp, and assigns an ID.
func (e *Enricher) Enrich(ev *models.EnrichedEvent) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = models.NewTimestamp(e.now().UTC())
	}
	if e.geo != nil && ev.SourceAddress != "" {
		if code, ok := e.geo.LookupCountry(ev.SourceAddress); ok {
			ev.Country = code
		}
	}
}
