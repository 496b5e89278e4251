// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/honeyscope/internal/models"
)

// GapSentinelMs is returned by AvgGapMs when fewer than two timestamps exist.
// It must stay above every delay threshold used by the classifier.
const GapSentinelMs = 999999.0

// Entropy returns the Shannon entropy, in bits, of the character
// distribution of s. The empty string has zero entropy.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}

	counts := make(map[rune]int)
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}

	// Sorted so the summation order, and therefore the result, does not
	// depend on map iteration or on the order of characters in s.
	chars := make([]rune, 0, len(counts))
	for r := range counts {
		chars = append(chars, r)
	}
	slices.Sort(chars)

	probs := make([]float64, len(chars))
	for i, r := range chars {
		probs[i] = float64(counts[r]) / float64(total)
	}
	return stat.Entropy(probs) / math.Ln2
}

// MeanEntropy averages Entropy over values. Duplicates count once per
// occurrence. Returns 0 for an empty slice.
func MeanEntropy(values []string) float64 {
	if len(values) == 0 {
		return 0
	}
	e := make([]float64, len(values))
	for i, v := range values {
		e[i] = Entropy(v)
	}
	return stat.Mean(e, nil)
}

// AvgGapMs sorts the events' timestamps and returns the mean difference
// between consecutive ones in milliseconds. Events without a timestamp are
// ignored. Returns GapSentinelMs when fewer than two timestamps remain.
func AvgGapMs(events []models.Event) float64 {
	ts := make([]int64, 0, len(events))
	for i := range events {
		if events[i].Timestamp.IsZero() {
			continue
		}
		ts = append(ts, events[i].Timestamp.Millis())
	}
	if len(ts) < 2 {
		return GapSentinelMs
	}
	slices.Sort(ts)

	deltas := make([]float64, len(ts)-1)
	for i := 1; i < len(ts); i++ {
		deltas[i-1] = float64(ts[i] - ts[i-1])
	}
	return stat.Mean(deltas, nil)
}

type credential struct {
	username string
	password string
}

// ReuseRatio returns 1 - distinct (username, password) pairs / total events,
// or 0 for an empty window.
func ReuseRatio(events []models.Event) float64 {
	if len(events) == 0 {
		return 0
	}
	seen := make(map[credential]struct{}, len(events))
	for i := range events {
		seen[credential{events[i].Username, events[i].Password}] = struct{}{}
	}
	return 1 - float64(len(seen))/float64(len(events))
}
