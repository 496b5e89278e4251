// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package pipeline runs one authentication event through feature extraction,
classification, enrichment, aggregation and live fan-out.

	current + window
	      |
	features.Extract -> classifier.Classify -> enrich.Enrich
	      |
	aggregate.Apply (attacks only) -> Broadcaster.Publish -> aggregate.Persist

The pipeline holds no state of its own. The aggregate store and the
broadcaster are injected at construction and guard themselves.
*/
package pipeline

import (
	"context"
	"time"

	"github.com/tomtom215/honeyscope/internal/classifier"
	"github.com/tomtom215/honeyscope/internal/enrich"
	"github.com/tomtom215/honeyscope/internal/features"
	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/metrics"
	"github.com/tomtom215/honeyscope/internal/models"
)

// Aggregator folds classified events into running totals.
type Aggregator interface {
	Apply(ev *models.EnrichedEvent) bool
	Persist(ctx context.Context)
	CountryCounts() map[string]int
	Reset()
}

// Broadcaster delivers enriched events to live subscribers and retains
// them for backfill.
type Broadcaster interface {
	Publish(ev models.EnrichedEvent)
	ClearBacklog()
}

// Pipeline wires the processing stages together.
type Pipeline struct {
	classifier  *classifier.Classifier
	enricher    *enrich.Enricher
	aggregates  Aggregator
	broadcaster Broadcaster
}

// New creates a Pipeline.
func New(c *classifier.Classifier, e *enrich.Enricher, agg Aggregator, b Broadcaster) *Pipeline {
	return &Pipeline{
		classifier:  c,
		enricher:    e,
		aggregates:  agg,
		broadcaster: b,
	}
}

// Process classifies current against the same-source events in pool and
// returns the enriched result after it has been aggregated, published and
// persisted. Subscribers are notified before the snapshot write.
//
//nolint:gocritic // Event is treated as an immutable value
func (p *Pipeline) Process(ctx context.Context, current models.Event, pool []models.Event) models.EnrichedEvent {
	start := time.Now()

	fv := features.Extract(current, pool)
	result := p.classifier.Classify(&current, &fv)

	ev := models.NewEnrichedEvent(current, fv, result)
	p.enricher.Enrich(&ev)

	changed := p.aggregates.Apply(&ev)
	p.broadcaster.Publish(ev)
	if changed {
		p.aggregates.Persist(ctx)
	}

	metrics.RecordClassification(string(ev.Label), string(ev.AttackType), time.Since(start))
	logging.Ctx(ctx).Debug().
		Str("id", ev.ID).
		Str("src_ip", ev.SourceAddress).
		Str("classification", string(ev.Label)).
		Str("attack_type", string(ev.AttackType)).
		Float64("risk_score", ev.RiskScore).
		Str("country", ev.Country).
		Msg("Event processed")

	return ev
}

// Reset clears the in-memory country counts and the recent-event backlog,
// and returns the post-reset counts.
func (p *Pipeline) Reset() map[string]int {
	p.aggregates.Reset()
	p.broadcaster.ClearBacklog()
	return p.aggregates.CountryCounts()
}
