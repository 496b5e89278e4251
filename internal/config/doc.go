// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package config loads Honeyscope configuration with Koanf v2.

Sources are layered, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, config.yaml, config.yml,
    /etc/honeyscope/config.yaml
 3. Environment variables, through an explicit name mapping

Only mapped environment variables are read, so unrelated variables never
leak into configuration. Comma-separated values are split for slice fields
such as CORS_ORIGINS.

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
	CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
	SERVICE_TOKEN_SECRET
	GEOIP_DB_PATH, GEOIP_CACHE_SIZE
	AGGREGATE_STORE (file|badger), SNAPSHOT_PATH, BADGER_PATH,
	TIMESTAMP_CAP, SNAPSHOT_BREAKER_THRESHOLD, SNAPSHOT_BREAKER_TIMEOUT
	FEED_BACKLOG_SIZE, FEED_CLIENT_BUFFER
	NATS_ENABLED, NATS_URL, NATS_SUBJECT, NATS_QUEUE_GROUP, NATS_WINDOW,
	NATS_MAX_EVENTS_PER_SECOND

# Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
