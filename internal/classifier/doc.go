// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package classifier implements the deterministic two-stage rule engine that
labels authentication events.

Stage one maps a FeatureVector (and the current event) to a verdict of
benign, suspicious or attack with a fixed risk score. Stage two runs only
for attack verdicts and assigns an attack subtype with a fixed confidence.
Suspicious verdicts always carry potential_scan/0.50 and benign verdicts
none/0.10.

Both stages are ordered tables of (predicate, outcome) pairs evaluated
first-match-wins. Each table ends with a catch-all rule, so classification
is total: every FeatureVector maps to exactly one outcome.

Usage Example:

	c := classifier.New()
	result := c.Classify(&event, &fv)
	if result.IsAttack() {
	    logging.Info().Str("type", string(result.AttackType)).Msg("attack")
	}

Decision tables can be inspected with VerdictRules and SubtypeRules, and a
decision can be traced to the rule that produced it with Evaluate.
*/
package classifier
