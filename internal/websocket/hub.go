// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package websocket

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/metrics"
	"github.com/tomtom215/honeyscope/internal/models"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled is the normal graceful path (e.g., SIGTERM).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline indicates the context deadline was exceeded.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message event names.
const (
	EventNewLog     = "newLog"
	EventRecentLogs = "recentLogs"
	EventPing       = "ping"
	EventPong       = "pong"
)

// DefaultClientBuffer is the per-client send queue length.
const DefaultClientBuffer = 256

// Message is the envelope written to clients.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Config sizes the hub.
type Config struct {
	BacklogSize  int
	ClientBuffer int
}

// Hub maintains the set of subscribed clients and the recent-event backlog.
type Hub struct {
	mu           sync.RWMutex
	clients      map[*Client]struct{}
	backlog      *Backlog
	clientBuffer int
	closed       bool
	log          zerolog.Logger
}

// NewHub creates a Hub.
func NewHub(cfg Config) *Hub {
	if cfg.ClientBuffer <= 0 {
		cfg.ClientBuffer = DefaultClientBuffer
	}
	return &Hub{
		clients:      make(map[*Client]struct{}),
		backlog:      NewBacklog(cfg.BacklogSize),
		clientBuffer: cfg.ClientBuffer,
		log:          logging.WithComponent("websocket-hub"),
	}
}

// Publish appends ev to the backlog and queues it to every subscriber.
// It never blocks on a subscriber.
//
//nolint:gocritic // stored by value in the backlog
func (h *Hub) Publish(ev models.EnrichedEvent) {
	payload, err := json.Marshal(Message{Event: EventNewLog, Data: &ev})
	if err != nil {
		h.log.Error().Err(err).Str("id", ev.ID).Msg("failed to encode event for broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.backlog.Add(ev)
	metrics.BacklogSize.Set(float64(h.backlog.Len()))
	if h.closed {
		return
	}
	h.broadcastLocked(payload)
}

// broadcastLocked sends payload to all clients in ID order. Clients whose
// queue is full are dropped. Caller holds mu.
func (h *Hub) broadcastLocked(payload []byte) {
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	for _, c := range clients {
		select {
		case c.send <- payload:
			metrics.WSMessagesSent.Inc()
		default:
			h.removeLocked(c)
			metrics.WSClientsDropped.Inc()
			h.log.Warn().Uint64("client_id", c.id).Msg("websocket client too slow, disconnecting")
		}
	}
}

// ErrHubClosed is returned by Subscribe after the hub has shut down.
var ErrHubClosed = errors.New("websocket hub closed")

// Subscribe registers c and, when backfill > 0, queues the newest backfill
// backlog events (oldest first) as a single recentLogs message ahead of any
// live event.
func (h *Hub) Subscribe(c *Client, backfill int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}

	if backfill > 0 {
		recent := h.backlog.Last(backfill)
		payload, err := json.Marshal(Message{Event: EventRecentLogs, Data: recent})
		if err != nil {
			return err
		}
		select {
		case c.send <- payload:
		default:
			return errors.New("websocket client send buffer too small for backfill")
		}
	}

	h.clients[c] = struct{}{}
	metrics.WSConnections.Set(float64(len(h.clients)))
	h.log.Info().Int("total_clients", len(h.clients)).Int("backfill", backfill).Msg("websocket client connected")
	return nil
}

// Unsubscribe removes c. Safe to call for a client already removed.
func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		h.removeLocked(c)
		h.log.Info().Int("total_clients", len(h.clients)).Msg("websocket client disconnected")
	}
}

// removeLocked must be called with mu held.
func (h *Hub) removeLocked(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	metrics.WSConnections.Set(float64(len(h.clients)))
}

// Recent returns up to limit of the newest backlog events in insertion
// order, and the number of events currently retained.
func (h *Hub) Recent(limit int) (logs []models.EnrichedEvent, total int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.backlog.Last(limit), h.backlog.Len()
}

// BacklogCapacity returns the backlog capacity.
func (h *Hub) BacklogCapacity() int {
	return h.backlog.Cap()
}

// ClearBacklog drops all retained events.
func (h *Hub) ClearBacklog() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.backlog.Clear()
	metrics.BacklogSize.Set(0)
}

// GetClientCount returns the number of connected clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// RunWithContext blocks until ctx is done, then disconnects every client.
// Publish keeps filling the backlog afterwards, but no new client can join.
// Designed for suture supervision.
func (h *Hub) RunWithContext(ctx context.Context) error {
	h.mu.Lock()
	h.closed = false
	h.mu.Unlock()

	<-ctx.Done()

	clientCount := h.closeAllClients()
	h.log.Info().
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", clientCount).
		Msg("websocket hub stopped")
	return ctx.Err()
}

func getShutdownReason(ctx context.Context) ShutdownReason {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

// closeAllClients disconnects every client and refuses new ones.
func (h *Hub) closeAllClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	n := len(h.clients)
	for c := range h.clients {
		h.removeLocked(c)
	}
	return n
}
