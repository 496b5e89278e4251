// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package api

import (
	"net/http"

	"github.com/tomtom215/honeyscope/internal/logging"
	ws "github.com/tomtom215/honeyscope/internal/websocket"
)

// WebSocket upgrades the connection and subscribes it to the live feed.
// With ?backlog=N the newest N backlog events arrive first as one
// recentLogs message.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	backfill := parseLimit(r.URL.Query().Get("backlog"), 0, h.hub.BacklogCapacity())

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.hub, conn)
	if err := h.hub.Subscribe(client, backfill); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket subscribe failed")
		_ = conn.Close()
		return
	}
	client.Start()
}
