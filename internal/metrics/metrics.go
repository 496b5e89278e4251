// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// Pipeline Metrics
	EventsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "honeyscope_events_ingested_total",
			Help: "Events accepted at an ingestion boundary",
		},
		[]string{"source"},
	)

	IngestRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "honeyscope_events_rejected_total",
			Help: "Inbound payloads rejected before the pipeline ran",
		},
		[]string{"reason"},
	)

	EventsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "honeyscope_events_classified_total",
			Help: "Classified events by verdict and attack subtype",
		},
		[]string{"classification", "attack_type"},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "honeyscope_pipeline_duration_seconds",
			Help:    "Time to classify, enrich, aggregate and broadcast one event",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)

	// GeoIP Metrics
	GeoLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "honeyscope_geoip_lookups_total",
			Help: "GeoIP lookups by result (hit, miss, skipped, unavailable)",
		},
		[]string{"result"},
	)

	GeoCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "honeyscope_geoip_cache_hits_total",
			Help: "GeoIP lookups answered from the LRU cache",
		},
	)

	// Aggregate Metrics
	SnapshotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "honeyscope_snapshot_writes_total",
			Help: "Aggregate snapshot writes by status",
		},
		[]string{"status"},
	)

	SnapshotSelfHeals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "honeyscope_snapshot_self_heals_total",
			Help: "Missing or corrupt snapshots replaced with defaults",
		},
	)

	SnapshotBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "honeyscope_snapshot_breaker_state",
			Help: "Snapshot write circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	TotalAttacks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "honeyscope_total_attacks",
			Help: "Durable running total of attack events",
		},
	)

	// Live Feed Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Number of active live feed subscribers",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Messages queued to live feed subscribers",
		},
	)

	WSClientsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_clients_dropped_total",
			Help: "Subscribers disconnected because their send buffer was full",
		},
	)

	BacklogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "honeyscope_backlog_size",
			Help: "Events currently retained in the recent-event backlog",
		},
	)

	// NATS Metrics
	NATSMessagesConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nats_messages_consumed_total",
			Help: "Capture events received from NATS",
		},
	)

	NATSMessagesParseFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nats_messages_parse_failed_total",
			Help: "NATS messages that could not be decoded into an event",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordIngest counts an accepted event from source ("http" or "stream").
func RecordIngest(source string) {
	EventsIngested.WithLabelValues(source).Inc()
}

// RecordRejected counts a payload rejected at the boundary.
func RecordRejected(reason string) {
	IngestRejected.WithLabelValues(reason).Inc()
}

// RecordClassification records the pipeline outcome for one event.
func RecordClassification(classification, attackType string, duration time.Duration) {
	EventsClassified.WithLabelValues(classification, attackType).Inc()
	PipelineDuration.Observe(duration.Seconds())
}

// RecordGeoLookup records a GeoIP lookup result.
func RecordGeoLookup(result string) {
	GeoLookups.WithLabelValues(result).Inc()
}

// RecordSnapshotWrite records a snapshot persistence attempt.
func RecordSnapshotWrite(err error) {
	if err != nil {
		SnapshotWrites.WithLabelValues("error").Inc()
		return
	}
	SnapshotWrites.WithLabelValues("success").Inc()
}
