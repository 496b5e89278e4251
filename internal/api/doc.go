// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package api provides the HTTP surface of Honeyscope.

Routes are served by a chi router with a shared middleware stack
(request ID, real IP, panic recovery, CORS, Prometheus metrics and a
per-IP rate limit):

	GET  /                                      service status
	POST /api/v1/logs/send-log                  submit one honeypot event (alias /send-log)
	GET  /api/v1/logs/country-counts            running per-country attack counts
	POST /api/v1/logs/country-counts/batch      tally countries for a batch of raw logs
	POST /api/v1/logs/reset                     clear in-memory counts and the backlog
	GET  /api/v1/logs/recent-logs?limit=N       newest backlog entries
	GET  /api/v1/logs/persistent-stats          durable aggregate snapshot
	POST /api/v1/logs/persistent-stats/reset    clear the durable snapshot
	GET  /ws/logs?backlog=N                     live feed over websocket
	GET  /api/v1/health/live, /api/v1/health/ready
	GET  /metrics

Every JSON body carries a "status" field. Errors are reported as:

	{"status": "error", "error": "no log payload"}

When a service token secret is configured, event submission requires an
HS256 bearer token (see internal/auth). Query endpoints stay open.
*/
package api
