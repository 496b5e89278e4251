// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

// Package logging provides centralized zerolog-based logging for Honeyscope.
//
// A single global logger is configured once from main via Init and used
// through the package-level level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Error().Err(err).Msg("Snapshot write failed")
//
//	// With request ID propagated by middleware
//	logging.Ctx(ctx).Warn().Msg("Rejected payload")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never emitted.
//
// Libraries that require a *slog.Logger (sutureslog) are bridged with
// NewSlogLogger, which writes through the same zerolog backend.
package logging
