// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/honeyscope/internal/auth"
	"github.com/tomtom215/honeyscope/internal/geoip"
	"github.com/tomtom215/honeyscope/internal/ingest"
	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/metrics"
	"github.com/tomtom215/honeyscope/internal/models"
	"github.com/tomtom215/honeyscope/internal/validation"
)

// SendLogResponse is returned for an accepted submission.
type SendLogResponse struct {
	Status string               `json:"status"`
	Data   models.EnrichedEvent `json:"data"`
}

// RecentLogsResponse is returned by the recent-log query.
type RecentLogsResponse struct {
	Logs     []models.EnrichedEvent `json:"logs"`
	Total    int                    `json:"total"`
	Returned int                    `json:"returned"`
}

// ResetResponse is returned by the in-memory reset.
type ResetResponse struct {
	Status        string         `json:"status"`
	CountryCounts map[string]int `json:"country_counts"`
}

// StatsResetResponse is returned by the durable reset.
type StatsResetResponse struct {
	Status string                   `json:"status"`
	Stats  models.AggregateSnapshot `json:"stats"`
}

// BatchRequest is the country-counts batch body.
type BatchRequest struct {
	Logs []json.RawMessage `json:"logs" validate:"required,max=10000"`
}

// BatchResponse reports a batch tally.
type BatchResponse struct {
	Status        string         `json:"status"`
	CountryCounts map[string]int `json:"country_counts"`
	Processed     int            `json:"processed"`
	Skipped       int            `json:"skipped"`
}

// SendLog accepts one honeypot event and returns it classified and enriched.
func (h *Handler) SendLog(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSubmissionBytes))
	if err != nil {
		metrics.RecordRejected("body_too_large")
		respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	sub, err := ingest.DecodeSubmission(body)
	if err != nil {
		metrics.RecordRejected(rejectReason(err))
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Submission rejected")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.RecordIngest("http")
	ev := h.pipeline.Process(r.Context(), sub.Current, sub.Window)
	logging.Ctx(r.Context()).Debug().
		Str("sensor", auth.SensorFromContext(r.Context())).
		Str("id", ev.ID).
		Msg("Submission processed")
	respondJSON(w, http.StatusOK, SendLogResponse{Status: StatusSent, Data: ev})
}

// rejectReason maps ingest errors to a bounded metric label.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, ingest.ErrMissingLog):
		return "missing_log"
	case errors.Is(err, ingest.ErrMissingSourceAddress):
		return "missing_address"
	case errors.Is(err, ingest.ErrInvalidSourceAddress):
		return "invalid_address"
	default:
		return "malformed"
	}
}

// CountryCounts returns the running per-country attack counts.
func (h *Handler) CountryCounts(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.stats.CountryCounts())
}

// CountryCountsBatch tallies countries for a batch of raw logs without
// touching the aggregate store.
func (h *Handler) CountryCountsBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBatchBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Status: StatusError, Error: verr.Error(), Fields: verr.Fields})
		return
	}

	events, skipped := ingest.DecodeBatch(req.Logs)
	respondJSON(w, http.StatusOK, BatchResponse{
		Status:        StatusOK,
		CountryCounts: geoip.CountryCounts(h.geo, events),
		Processed:     len(events),
		Skipped:       skipped,
	})
}

// Reset clears the in-memory country counts and the backlog. The durable
// snapshot is untouched.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	counts := h.pipeline.Reset()
	logging.Ctx(r.Context()).Info().Msg("In-memory counts and backlog reset")
	respondJSON(w, http.StatusOK, ResetResponse{Status: StatusReset, CountryCounts: counts})
}

// RecentLogs returns the newest backlog entries in insertion order.
// Missing, invalid or non-positive limits return the whole backlog and
// oversized limits are clamped to its capacity.
func (h *Handler) RecentLogs(w http.ResponseWriter, r *http.Request) {
	capacity := h.hub.BacklogCapacity()
	limit := parseLimit(r.URL.Query().Get("limit"), capacity, capacity)

	logs, total := h.hub.Recent(limit)
	if logs == nil {
		logs = []models.EnrichedEvent{}
	}
	respondJSON(w, http.StatusOK, RecentLogsResponse{Logs: logs, Total: total, Returned: len(logs)})
}

// parseLimit returns def for anything but a positive integer, clamped to max.
func parseLimit(raw string, def, maxVal int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > maxVal {
		return maxVal
	}
	return n
}

// PersistentStats returns the durable aggregate snapshot.
func (h *Handler) PersistentStats(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.stats.Snapshot())
}

// ResetPersistentStats clears the durable snapshot.
func (h *Handler) ResetPersistentStats(w http.ResponseWriter, r *http.Request) {
	snap := h.stats.ResetDurable(r.Context())
	logging.Ctx(r.Context()).Warn().Msg("Durable aggregate snapshot reset")
	respondJSON(w, http.StatusOK, StatsResetResponse{Status: StatusReset, Stats: snap})
}
