// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package websocket provides the live attack feed.

Key Components:

  - Hub: set of subscribed clients plus the bounded recent-event Backlog
  - Client: one WebSocket connection with read and write goroutines
  - Message: the {"event": ..., "data": ...} envelope sent to clients

Every published EnrichedEvent is appended to the Backlog and queued to all
subscribed clients as a newLog message. Appending and fan-out happen in the
same critical section, and Subscribe snapshots the Backlog and registers the
client in that section too, so a joining client sees each event exactly
once: either in its backfill or live.

Fan-out never blocks. Each client has a bounded send buffer; a client whose
buffer is full is disconnected.

Message Types:

  - newLog: one enriched event (data is the event)
  - recentLogs: backfill sent on subscribe (data is an array, oldest first)
  - pong: reply to a client {"event":"ping"}

Usage Example - Client (JavaScript):

	const ws = new WebSocket('ws://localhost:8000/ws/logs?backlog=100');
	ws.onmessage = (e) => {
	    const msg = JSON.parse(e.data);
	    if (msg.event === 'newLog') addAttack(msg.data);
	};
*/
package websocket
