// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/honeyscope/internal/metrics"
	"github.com/tomtom215/honeyscope/internal/models"
	"github.com/tomtom215/honeyscope/internal/validation"
)

var (
	// ErrMissingLog is returned when a submission carries no log payload.
	ErrMissingLog = errors.New("no log payload")

	// ErrMissingSourceAddress is returned when none of the address fields
	// is present.
	ErrMissingSourceAddress = errors.New("no source address (src_ip, ip or source_ip)")

	// ErrInvalidSourceAddress is returned when the address is not an IP.
	ErrInvalidSourceAddress = errors.New("invalid source address")

	// ErrMalformedPayload is returned when the body is not a JSON object.
	ErrMalformedPayload = errors.New("malformed payload")
)

// RawLog is one capture event as sent by the honeypot.
type RawLog struct {
	Timestamp models.Timestamp `json:"timestamp"`
	SrcIP     string           `json:"src_ip"`
	IP        string           `json:"ip"`
	SourceIP  string           `json:"source_ip"`
	Username  string           `json:"username"`
	Password  string           `json:"password"`
	EventID   string           `json:"eventid"`
	Message   string           `json:"message"`
}

// Address returns the first non-empty address field.
func (r *RawLog) Address() string {
	for _, addr := range []string{r.SrcIP, r.IP, r.SourceIP} {
		if addr = strings.TrimSpace(addr); addr != "" {
			return addr
		}
	}
	return ""
}

// Normalize converts r into a canonical Event.
func Normalize(r *RawLog) (models.Event, error) {
	ev := models.Event{
		Timestamp:     r.Timestamp,
		SourceAddress: r.Address(),
		Username:      r.Username,
		Password:      r.Password,
		EventID:       r.EventID,
		Message:       r.Message,
	}
	if ev.SourceAddress == "" {
		return models.Event{}, ErrMissingSourceAddress
	}
	if verr := validation.ValidateStruct(&ev); verr != nil {
		return models.Event{}, fmt.Errorf("%w: %s", ErrInvalidSourceAddress, verr.Error())
	}
	return ev, nil
}

// DecodeLog decodes and normalizes a single capture event.
func DecodeLog(data []byte) (models.Event, error) {
	var raw RawLog
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Event{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return Normalize(&raw)
}

// Submission is a decoded submission body.
type Submission struct {
	Current models.Event
	Window  []models.Event
}

// envelope captures the wrapper keys of a submission.
type envelope struct {
	ClassifiedLog json.RawMessage   `json:"classifiedLog"`
	CurrentLog    json.RawMessage   `json:"current_log"`
	RecentLogs    []json.RawMessage `json:"recent_logs"`
}

// logKeys mark a bare log object.
var logKeys = []string{"src_ip", "ip", "source_ip", "eventid", "message", "username", "timestamp"}

// DecodeSubmission decodes an HTTP submission body.
func DecodeSubmission(body []byte) (Submission, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Submission{}, ErrMissingLog
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return Submission{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Submission{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	current := pickLog(env, fields, body)
	if current == nil {
		return Submission{}, ErrMissingLog
	}

	ev, err := DecodeLog(current)
	if err != nil {
		return Submission{}, err
	}

	return Submission{Current: ev, Window: decodeWindow(env.RecentLogs)}, nil
}

// pickLog returns the log object of a submission, or nil.
func pickLog(env envelope, fields map[string]json.RawMessage, body []byte) json.RawMessage {
	for _, candidate := range []json.RawMessage{env.ClassifiedLog, env.CurrentLog} {
		if isObject(candidate) {
			return candidate
		}
	}
	for _, key := range logKeys {
		if _, ok := fields[key]; ok {
			return body
		}
	}
	return nil
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 1 && raw[0] == '{'
}

func decodeWindow(entries []json.RawMessage) []models.Event {
	window := make([]models.Event, 0, len(entries))
	for _, entry := range entries {
		ev, err := DecodeLog(entry)
		if err != nil {
			metrics.RecordRejected("window_entry")
			continue
		}
		window = append(window, ev)
	}
	return window
}

// DecodeBatch normalizes a batch of raw logs, skipping entries without a
// usable source address. It returns the events and the number skipped.
func DecodeBatch(entries []json.RawMessage) (events []models.Event, skipped int) {
	events = make([]models.Event, 0, len(entries))
	for _, entry := range entries {
		ev, err := DecodeLog(entry)
		if err != nil {
			skipped++
			continue
		}
		events = append(events, ev)
	}
	return events, skipped
}
