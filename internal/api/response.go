// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/honeyscope/internal/logging"
)

// Status values used in response bodies.
const (
	StatusSent    = "sent"
	StatusError   = "error"
	StatusReset   = "reset"
	StatusRunning = "running"
	StatusOK      = "ok"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status string      `json:"status"`
	Error  string      `json:"error"`
	Fields interface{} `json:"fields,omitempty"`
}

// respondJSON encodes v with the given status code.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes an ErrorResponse.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Status: StatusError, Error: message})
}
