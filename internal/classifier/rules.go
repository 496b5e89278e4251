// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package classifier

import "github.com/tomtom215/honeyscope/internal/models"

// VerdictRule is one row of the stage-one table.
type VerdictRule struct {
	Name  string
	Match func(fv *models.FeatureVector, ev *models.Event) bool
	Label models.Label
	Risk  float64
}

// SubtypeRule is one row of the stage-two table.
type SubtypeRule struct {
	Name       string
	Match      func(fv *models.FeatureVector) bool
	Type       models.AttackType
	Confidence float64
}

// Fixed outcomes for non-attack verdicts.
const (
	SuspiciousConfidence = 0.50
	BenignConfidence     = 0.10
)

// verdictRules is evaluated in order; the last row always matches.
var verdictRules = []VerdictRule{
	{
		Name:  "successful_login",
		Match: func(_ *models.FeatureVector, ev *models.Event) bool { return ev != nil && ev.IsSuccess() },
		Label: models.LabelAttack,
		Risk:  0.98,
	},
	{
		Name: "rapid_failed_burst",
		Match: func(fv *models.FeatureVector, _ *models.Event) bool {
			return fv.AttemptsInWindow >= 10 && fv.FailedRatio >= 0.8 && fv.AvgDelayMs < 2000
		},
		Label: models.LabelAttack,
		Risk:  0.93,
	},
	{
		Name: "high_rate",
		Match: func(fv *models.FeatureVector, _ *models.Event) bool {
			return fv.AvgDelayMs < 1000 || fv.AttemptsInWindow > 20
		},
		Label: models.LabelAttack,
		Risk:  0.90,
	},
	{
		Name: "credential_variety",
		Match: func(fv *models.FeatureVector, _ *models.Event) bool {
			return fv.UniqueUsernames > 5 || fv.UniquePasswords > 5
		},
		Label: models.LabelSuspicious,
		Risk:  0.65,
	},
	{
		Name: "high_entropy_credentials",
		Match: func(fv *models.FeatureVector, _ *models.Event) bool {
			return fv.UsernameEntropy > 3.0 || fv.PasswordEntropy > 3.0
		},
		Label: models.LabelSuspicious,
		Risk:  0.60,
	},
	{
		Name: "reused_failing_credentials",
		Match: func(fv *models.FeatureVector, _ *models.Event) bool {
			return fv.ReuseRatio > 0.3 && fv.FailedRatio > 0.5
		},
		Label: models.LabelSuspicious,
		Risk:  0.55,
	},
	{
		Name:  "default_benign",
		Match: func(*models.FeatureVector, *models.Event) bool { return true },
		Label: models.LabelBenign,
		Risk:  0.20,
	},
}

// subtypeRules is evaluated in order for attack verdicts; the last row always matches.
var subtypeRules = []SubtypeRule{
	{
		Name: "brute_force",
		Match: func(fv *models.FeatureVector) bool {
			return fv.UniqueUsernames <= 2 && fv.UniquePasswords >= 6 && fv.AvgDelayMs < 2000
		},
		Type:       models.AttackBruteForce,
		Confidence: 0.90,
	},
	{
		Name: "credential_stuffing",
		Match: func(fv *models.FeatureVector) bool {
			return fv.UniqueUsernames >= 5 && fv.UniquePasswords <= 3 && fv.SuccessRatio > 0
		},
		Type:       models.AttackCredentialStuffing,
		Confidence: 0.85,
	},
	{
		Name: "dictionary_attack",
		Match: func(fv *models.FeatureVector) bool {
			return fv.UniqueUsernames >= 4 && fv.UniquePasswords >= 6 && fv.PasswordEntropy < 3.0
		},
		Type:       models.AttackDictionary,
		Confidence: 0.80,
	},
	{
		Name: "bot_login",
		Match: func(fv *models.FeatureVector) bool {
			return fv.AvgDelayMs < 800 && (fv.UsernameEntropy > 2.5 || fv.PasswordEntropy > 2.5)
		},
		Type:       models.AttackBotLogin,
		Confidence: 0.75,
	},
	{
		Name: "username_enumeration",
		Match: func(fv *models.FeatureVector) bool {
			return fv.UniqueUsernames >= 10 && fv.UniquePasswords <= 3
		},
		Type:       models.AttackUsernameEnumeration,
		Confidence: 0.70,
	},
	{
		Name: "password_spray",
		Match: func(fv *models.FeatureVector) bool {
			return fv.UniquePasswords <= 2 && fv.UniqueUsernames >= 8 && fv.AvgDelayMs > 2000
		},
		Type:       models.AttackPasswordSpray,
		Confidence: 0.80,
	},
	{
		Name:       "unknown_attack",
		Match:      func(*models.FeatureVector) bool { return true },
		Type:       models.AttackUnknown,
		Confidence: 0.40,
	},
}

// VerdictRules returns a copy of the stage-one table in evaluation order.
func VerdictRules() []VerdictRule {
	return append([]VerdictRule(nil), verdictRules...)
}

// SubtypeRules returns a copy of the stage-two table in evaluation order.
func SubtypeRules() []SubtypeRule {
	return append([]SubtypeRule(nil), subtypeRules...)
}
