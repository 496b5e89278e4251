// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/honeyscope/internal/geoip"
	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/models"
	ws "github.com/tomtom215/honeyscope/internal/websocket"
)

const (
	// maxSubmissionBytes bounds a single send-log body including its window.
	maxSubmissionBytes = 1 << 20
	// maxBatchBytes bounds a country-counts batch body.
	maxBatchBytes = 8 << 20
)

// Ingestor runs submitted events through classification and fan-out.
type Ingestor interface {
	Process(ctx context.Context, current models.Event, pool []models.Event) models.EnrichedEvent
	Reset() map[string]int
}

// StatsStore exposes the aggregate counters.
type StatsStore interface {
	CountryCounts() map[string]int
	Snapshot() models.AggregateSnapshot
	ResetDurable(ctx context.Context) models.AggregateSnapshot
}

// ReadinessCheck reports whether one dependency can serve traffic.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HandlerConfig wires a Handler.
type HandlerConfig struct {
	Pipeline Ingestor
	Stats    StatsStore
	Hub      *ws.Hub
	Geo      geoip.Lookuper

	Version        string
	AllowedOrigins []string
	Readiness      []ReadinessCheck
}

// Handler serves every Honeyscope route.
type Handler struct {
	pipeline       Ingestor
	stats          StatsStore
	hub            *ws.Hub
	geo            geoip.Lookuper
	version        string
	allowedOrigins []string
	readiness      []ReadinessCheck
	startTime      time.Time
}

// NewHandler creates a Handler. A nil Geo resolves nothing.
func NewHandler(cfg HandlerConfig) *Handler {
	geo := cfg.Geo
	if geo == nil {
		geo = geoip.Disabled()
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		pipeline:       cfg.Pipeline,
		stats:          cfg.Stats,
		hub:            cfg.Hub,
		geo:            geo,
		version:        version,
		allowedOrigins: cfg.AllowedOrigins,
		readiness:      cfg.Readiness,
		startTime:      time.Now(),
	}
}

func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts non-browser clients (no Origin header) and
// browsers whose origin is allowed by the CORS configuration.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.allowedOrigins) == 0 {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

// sanitizeLogValue strips control characters and truncates.
func sanitizeLogValue(s string) string {
	const maxLen = 200
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}
