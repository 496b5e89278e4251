// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Command server runs Honeyscope: it accepts honeypot authentication events,
classifies them, keeps running attack totals and streams every result to
live websocket subscribers.

# Startup

 1. Load configuration (defaults, then config.yaml, then environment)
 2. Initialize zerolog
 3. Open the GeoLite2-Country database (lookups degrade to "unknown" when absent)
 4. Open the snapshot store (JSON file or BadgerDB) behind a circuit breaker
 5. Build the aggregate store, websocket hub and classification pipeline
 6. Optionally subscribe to capture events on NATS
 7. Start the supervisor tree (HTTP server, hub, consumer, Badger GC)

# Configuration

Common environment variables:

	HTTP_PORT=8000
	LOG_LEVEL=info
	GEOIP_DB_PATH=/data/GeoLite2-Country.mmdb
	AGGREGATE_STORE=badger
	SERVICE_TOKEN_SECRET=<32+ characters>
	NATS_ENABLED=true
	NATS_URL=nats://nats:4222

# Signals

SIGINT and SIGTERM stop the supervisor tree, drain HTTP connections,
close websocket subscribers and flush the aggregate snapshot.
*/
package main
