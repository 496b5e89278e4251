// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

// Package features turns a current event and its per-source window into
// the FeatureVector consumed by the classifier.
package features

import (
	"github.com/tomtom215/honeyscope/internal/models"
	"github.com/tomtom215/honeyscope/internal/stats"
	"github.com/tomtom215/honeyscope/internal/window"
)

// Extract computes the feature vector for current over pool. The pool is
// filtered to current's source first, so callers may pass an unfiltered
// set of recent events. The current event only contributes if the caller
// included it in pool.
//
//nolint:gocritic // Event is passed by value as an immutable record
func Extract(current models.Event, pool []models.Event) models.FeatureVector {
	return FromWindow(window.FilterBySource(current, pool))
}

// FromWindow computes the feature vector over an already-filtered window.
func FromWindow(win []models.Event) models.FeatureVector {
	total := len(win)

	var failed, succeeded int
	usernames := make([]string, 0, total)
	passwords := make([]string, 0, total)
	for i := range win {
		ev := &win[i]
		if ev.IsFailure() {
			failed++
		}
		if ev.IsSuccess() {
			succeeded++
		}
		if ev.Username != "" {
			usernames = append(usernames, ev.Username)
		}
		if ev.Password != "" {
			passwords = append(passwords, ev.Password)
		}
	}

	return models.FeatureVector{
		AttemptsInWindow: total,
		FailedRatio:      ratio(failed, total),
		UniqueUsernames:  countDistinct(usernames),
		UniquePasswords:  countDistinct(passwords),
		UsernameEntropy:  stats.MeanEntropy(usernames),
		PasswordEntropy:  stats.MeanEntropy(passwords),
		AvgDelayMs:       stats.AvgGapMs(win),
		SuccessAttempts:  succeeded,
		AttemptsPerMin:   total,
		ReuseRatio:       stats.ReuseRatio(win),
		SuccessRatio:     ratio(succeeded, total),
	}
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func countDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
