// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package models

import "strings"

// Markers searched for inside Event.EventID. Matching is case-sensitive.
const (
	FailureMarker = "failed"
	SuccessMarker = "success"
)

// Event is one authentication attempt against the honeypot.
//
// SourceAddress is the canonical address; the ingestion boundary resolves
// the src_ip / ip / source_ip aliases before an Event is constructed.
type Event struct {
	Timestamp     Timestamp `json:"timestamp"`
	SourceAddress string    `json:"src_ip" validate:"required,ip"`
	Username      string    `json:"username,omitempty"`
	Password      string    `json:"password,omitempty"`
	EventID       string    `json:"eventid"`
	Message       string    `json:"message"`
}

// IsFailure reports whether the event kind carries the failure marker.
func (e *Event) IsFailure() bool {
	return strings.Contains(e.EventID, FailureMarker)
}

// IsSuccess reports whether the event kind carries the success marker.
func (e *Event) IsSuccess() bool {
	return strings.Contains(e.EventID, SuccessMarker)
}
