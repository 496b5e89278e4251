// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package ingest is the inbound boundary. It turns honeypot capture payloads
into canonical models.Event values and feeds them to the pipeline.

# Payload Shapes

The HTTP submission endpoint accepts any of:

	{"classifiedLog": {...}, "recent_logs": [...]}
	{"current_log": {...}, "recent_logs": [...]}
	{"src_ip": "...", "eventid": "...", ..., "recent_logs": [...]}

The source address may arrive as src_ip, ip or source_ip. The first
non-empty one wins and is validated as an IP address. Internal packages
only ever see Event.SourceAddress.

Window entries that cannot be normalized are dropped; they could never
share a source with the current event.

# Streaming

Consumer reads capture events from a watermill subscriber (NATS in
production), keeps a one-minute per-source History and runs the pipeline
with that history as the window.
*/
package ingest
