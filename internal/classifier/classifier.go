// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package classifier

import (
	"math"

	"github.com/tomtom215/honeyscope/internal/models"
)

// Decision is a classification together with the rules that produced it.
// SubtypeRule is empty unless the verdict was attack.
type Decision struct {
	models.Classification
	VerdictRule string
	SubtypeRule string
}

// Classifier evaluates the verdict and subtype tables.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	verdicts []VerdictRule
	subtypes []SubtypeRule
}

// New returns a Classifier using the built-in decision tables.
func New() *Classifier {
	return &Classifier{verdicts: verdictRules, subtypes: subtypeRules}
}

// Classify returns the two-stage classification for ev with features fv.
func (c *Classifier) Classify(ev *models.Event, fv *models.FeatureVector) models.Classification {
	return c.Evaluate(ev, fv).Classification
}

// Evaluate runs both stages and records which rules matched.
func (c *Classifier) Evaluate(ev *models.Event, fv *models.FeatureVector) Decision {
	verdict := c.verdict(fv, ev)

	d := Decision{
		Classification: models.Classification{
			Label:     verdict.Label,
			RiskScore: round2(verdict.Risk),
		},
		VerdictRule: verdict.Name,
	}

	switch verdict.Label {
	case models.LabelAttack:
		sub := c.subtype(fv)
		d.AttackType = sub.Type
		d.AttackConfidence = sub.Confidence
		d.SubtypeRule = sub.Name
	case models.LabelSuspicious:
		d.AttackType = models.AttackPotentialScan
		d.AttackConfidence = SuspiciousConfidence
	default:
		d.AttackType = models.AttackNone
		d.AttackConfidence = BenignConfidence
	}
	return d
}

func (c *Classifier) verdict(fv *models.FeatureVector, ev *models.Event) VerdictRule {
	for i := range c.verdicts {
		if c.verdicts[i].Match(fv, ev) {
			return c.verdicts[i]
		}
	}
	// Unreachable with the built-in table, whose last row matches everything.
	return verdictRules[len(verdictRules)-1]
}

func (c *Classifier) subtype(fv *models.FeatureVector) SubtypeRule {
	for i := range c.subtypes {
		if c.subtypes[i].Match(fv) {
			return c.subtypes[i]
		}
	}
	return subtypeRules[len(subtypeRules)-1]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
