// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

// Package stats provides the numeric primitives behind feature extraction:
// Shannon entropy of a string, average inter-arrival gap, and the
// credential reuse ratio. All functions are pure and safe for concurrent use.
package stats
