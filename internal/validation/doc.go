// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

// Package validation wraps go-playground/validator v10 with a shared
// validator instance and readable error messages.
//
// Field names in errors use the JSON tag, so a failure on
//
//	SourceAddress string `json:"src_ip" validate:"required,ip"`
//
// is reported as "src_ip must be a valid IP address". The HTTP layer turns
// a *RequestValidationError into a 400 response with
// {"status":"error","error":...}.
package validation
