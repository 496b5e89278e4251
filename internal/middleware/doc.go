// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package middleware provides HTTP middleware shared by every route.

  - RequestID: reuses or generates X-Request-ID and puts it on the logging
    context, so logging.Ctx(r.Context()) tags entries with request_id
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern to keep label cardinality bounded
  - AccessLog: one zerolog line per request at debug level

All three are chi-compatible func(http.Handler) http.Handler values:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)

The response wrapper keeps http.Hijacker available so websocket upgrades
pass through the stack.
*/
package middleware
