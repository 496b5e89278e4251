// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package models defines the data structures shared by the Honeyscope pipeline.

Key Components:

  - Event: one authentication attempt captured by the honeypot
  - Timestamp: wire-tolerant time value (epoch milliseconds or ISO-8601)
  - FeatureVector: per-source window statistics used by the classifier
  - Classification: verdict, risk score, attack subtype and confidence
  - EnrichedEvent: Event plus country, guaranteed timestamp and Classification
  - AggregateSnapshot: durable running totals persisted by the aggregate store

Events are produced at the ingestion boundary with their source address
already normalized, so no other package inspects the raw address aliases.

Usage Example:

	import "github.com/tomtom215/honeyscope/internal/models"

	ev := models.Event{
	    SourceAddress: "203.0.113.42",
	    Username:      "root",
	    Password:      "123456",
	    EventID:       "cowrie.login.failed",
	}
*/
package models
