// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package models

// Label is the stage-one verdict for an event.
type Label string

const (
	LabelBenign     Label = "benign"
	LabelSuspicious Label = "suspicious"
	LabelAttack     Label = "attack"
)

// AttackType is the stage-two subtype.
type AttackType string

const (
	AttackBruteForce          AttackType = "brute_force"
	AttackCredentialStuffing  AttackType = "credential_stuffing"
	AttackDictionary          AttackType = "dictionary_attack"
	AttackBotLogin            AttackType = "bot_login"
	AttackUsernameEnumeration AttackType = "username_enumeration"
	AttackPasswordSpray       AttackType = "password_spray"
	AttackUnknown             AttackType = "unknown_attack"
	AttackPotentialScan       AttackType = "potential_scan"
	AttackNone                AttackType = "none"
)

// FeatureVector holds the window statistics for one event.
// JSON names match the fields consumed by existing dashboards.
type FeatureVector struct {
	AttemptsInWindow int     `json:"attempts_from_ip_last_1min"`
	FailedRatio      float64 `json:"failed_attempt_ratio_last_1min"`
	UniqueUsernames  int     `json:"unique_usernames_from_ip_last_1min"`
	UniquePasswords  int     `json:"unique_passwords_from_ip_last_1min"`
	UsernameEntropy  float64 `json:"username_entropy"`
	PasswordEntropy  float64 `json:"password_entropy"`
	AvgDelayMs       float64 `json:"avg_delay_ms_between_attempts"`
	SuccessAttempts  int     `json:"success_attempts"`
	AttemptsPerMin   int     `json:"attempts_per_min"`
	ReuseRatio       float64 `json:"reuse_ratio"`
	SuccessRatio     float64 `json:"success_ratio"`
}

// Classification is the combined two-stage result.
type Classification struct {
	Label            Label      `json:"classification"`
	RiskScore        float64    `json:"risk_score"`
	AttackType       AttackType `json:"attack_type"`
	AttackConfidence float64    `json:"attack_confidence"`
}

// IsAttack reports whether the verdict is attack.
func (c Classification) IsAttack() bool {
	return c.Label == LabelAttack
}
