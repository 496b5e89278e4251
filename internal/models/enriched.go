// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package models

// EnrichedEvent is the unit broadcast to live subscribers and retained in
// the recent-event backlog.
type EnrichedEvent struct {
	ID            string    `json:"id"`
	Timestamp     Timestamp `json:"timestamp"`
	SourceAddress string    `json:"src_ip"`
	IP            string    `json:"ip"`
	Username      string    `json:"username,omitempty"`
	Password      string    `json:"password,omitempty"`
	EventID       string    `json:"eventid"`
	Message       string    `json:"message"`
	Country       string    `json:"country,omitempty"`

	Classification
	Features FeatureVector `json:"features"`
}

// NewEnrichedEvent copies ev into an EnrichedEvent carrying result and features.
// Country and missing timestamps are filled by the enrichment stage.
//
//nolint:gocritic // Event is small and treated as an immutable value
func NewEnrichedEvent(ev Event, fv FeatureVector, result Classification) EnrichedEvent {
	return EnrichedEvent{
		Timestamp:      ev.Timestamp,
		SourceAddress:  ev.SourceAddress,
		IP:             ev.SourceAddress,
		Username:       ev.Username,
		Password:       ev.Password,
		EventID:        ev.EventID,
		Message:        ev.Message,
		Classification: result,
		Features:       fv,
	}
}
