// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package classifier

import (
	"fmt"
	"testing"

	"github.com/tomtom215/honeyscope/internal/features"
	"github.com/tomtom215/honeyscope/internal/models"
	"github.com/tomtom215/honeyscope/internal/stats"
)

// quiet returns a vector that matches no rule except the catch-alls.
func quiet() models.FeatureVector {
	return models.FeatureVector{
		AttemptsInWindow: 1,
		AttemptsPerMin:   1,
		UniqueUsernames:  1,
		UniquePasswords:  1,
		UsernameEntropy:  1.5,
		PasswordEntropy:  1.5,
		AvgDelayMs:       stats.GapSentinelMs,
	}
}

var (
	failedEvent  = models.Event{SourceAddress: "1.2.3.4", EventID: "cowrie.login.failed"}
	successEvent = models.Event{SourceAddress: "1.2.3.4", EventID: "cowrie.login.success"}
)

func TestVerdictRulesInPriorityOrder(t *testing.T) {
	tests := []struct {
		rule      string
		event     models.Event
		mutate    func(fv *models.FeatureVector)
		wantLabel models.Label
		wantRisk  float64
	}{
		{"successful_login", successEvent, func(*models.FeatureVector) {}, models.LabelAttack, 0.98},
		{"rapid_failed_burst", failedEvent, func(fv *models.FeatureVector) {
			fv.AttemptsInWindow, fv.FailedRatio, fv.AvgDelayMs = 10, 0.8, 1500
		}, models.LabelAttack, 0.93},
		{"high_rate", failedEvent, func(fv *models.FeatureVector) {
			fv.AvgDelayMs = 999
		}, models.LabelAttack, 0.90},
		{"credential_variety", failedEvent, func(fv *models.FeatureVector) {
			fv.UniqueUsernames = 6
		}, models.LabelSuspicious, 0.65},
		{"high_entropy_credentials", failedEvent, func(fv *models.FeatureVector) {
			fv.PasswordEntropy = 3.01
		}, models.LabelSuspicious, 0.60},
		{"reused_failing_credentials", failedEvent, func(fv *models.FeatureVector) {
			fv.ReuseRatio, fv.FailedRatio = 0.31, 0.51
		}, models.LabelSuspicious, 0.55},
		{"default_benign", failedEvent, func(*models.FeatureVector) {}, models.LabelBenign, 0.20},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			fv := quiet()
			tt.mutate(&fv)
			ev := tt.event

			d := c.Evaluate(&ev, &fv)
			if d.VerdictRule != tt.rule {
				t.Errorf("matched rule %q, want %q", d.VerdictRule, tt.rule)
			}
			if d.Label != tt.wantLabel || d.RiskScore != tt.wantRisk {
				t.Errorf("got %s/%.2f, want %s/%.2f", d.Label, d.RiskScore, tt.wantLabel, tt.wantRisk)
			}
		})
	}
}

func TestVerdictBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(fv *models.FeatureVector)
		wantLabel models.Label
	}{
		{"21 attempts is high rate", func(fv *models.FeatureVector) { fv.AttemptsInWindow = 21 }, models.LabelAttack},
		{"20 attempts at sentinel delay is not", func(fv *models.FeatureVector) { fv.AttemptsInWindow = 20 }, models.LabelBenign},
		{"delay exactly 1000 is not high rate", func(fv *models.FeatureVector) { fv.AvgDelayMs = 1000 }, models.LabelBenign},
		{"5 unique usernames is not variety", func(fv *models.FeatureVector) { fv.UniqueUsernames = 5 }, models.LabelBenign},
		{"entropy exactly 3 is not high", func(fv *models.FeatureVector) { fv.UsernameEntropy = 3.0 }, models.LabelBenign},
		{"burst needs failure ratio", func(fv *models.FeatureVector) {
			fv.AttemptsInWindow, fv.FailedRatio, fv.AvgDelayMs = 10, 0.79, 1500
		}, models.LabelBenign},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := quiet()
			tt.mutate(&fv)
			ev := failedEvent
			if got := c.Classify(&ev, &fv); got.Label != tt.wantLabel {
				t.Errorf("label = %s, want %s", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestSubtypeRulesInPriorityOrder(t *testing.T) {
	tests := []struct {
		rule     string
		mutate   func(fv *models.FeatureVector)
		wantType models.AttackType
		wantConf float64
	}{
		{"brute_force", func(fv *models.FeatureVector) {
			fv.UniqueUsernames, fv.UniquePasswords, fv.AvgDelayMs = 2, 6, 1500
		}, models.AttackBruteForce, 0.90},
		{"credential_stuffing", func(fv *models.FeatureVector) {
			fv.UniqueUsernames, fv.UniquePasswords, fv.SuccessRatio = 5, 3, 0.2
		}, models.AttackCredentialStuffing, 0.85},
		{"dictionary_attack", func(fv *models.FeatureVector) {
			fv.UniqueUsernames, fv.UniquePasswords, fv.PasswordEntropy = 4, 6, 2.0
		}, models.AttackDictionary, 0.80},
		{"bot_login", func(fv *models.FeatureVector) {
			fv.AvgDelayMs, fv.UsernameEntropy = 500, 2.6
		}, models.AttackBotLogin, 0.75},
		{"username_enumeration", func(fv *models.FeatureVector) {
			fv.UniqueUsernames, fv.UniquePasswords = 10, 3
		}, models.AttackUsernameEnumeration, 0.70},
		{"password_spray", func(fv *models.FeatureVector) {
			fv.UniqueUsernames, fv.UniquePasswords, fv.AvgDelayMs = 8, 2, 3000
		}, models.AttackPasswordSpray, 0.80},
		{"unknown_attack", func(*models.FeatureVector) {}, models.AttackUnknown, 0.40},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			fv := quiet()
			tt.mutate(&fv)
			ev := successEvent

			d := c.Evaluate(&ev, &fv)
			if d.Label != models.LabelAttack {
				t.Fatalf("label = %s, want attack", d.Label)
			}
			if d.SubtypeRule != tt.rule {
				t.Errorf("matched subtype rule %q, want %q", d.SubtypeRule, tt.rule)
			}
			if d.AttackType != tt.wantType || d.AttackConfidence != tt.wantConf {
				t.Errorf("got %s/%.2f, want %s/%.2f", d.AttackType, d.AttackConfidence, tt.wantType, tt.wantConf)
			}
		})
	}
}

func TestSubtypeOnlyForAttacks(t *testing.T) {
	c := New()

	// Satisfies brute_force, but the stage-one verdict is only suspicious.
	fv := quiet()
	fv.UniqueUsernames, fv.UniquePasswords, fv.AvgDelayMs = 2, 6, 1500
	ev := failedEvent

	d := c.Evaluate(&ev, &fv)
	if d.Label != models.LabelSuspicious {
		t.Fatalf("label = %s, want suspicious", d.Label)
	}
	if d.AttackType != models.AttackPotentialScan || d.AttackConfidence != SuspiciousConfidence {
		t.Errorf("suspicious subtype = %s/%.2f, want potential_scan/0.50", d.AttackType, d.AttackConfidence)
	}
	if d.SubtypeRule != "" {
		t.Errorf("stage two ran for a suspicious verdict: %q", d.SubtypeRule)
	}

	benign := quiet()
	got := c.Classify(&ev, &benign)
	if got.AttackType != models.AttackNone || got.AttackConfidence != BenignConfidence {
		t.Errorf("benign subtype = %s/%.2f, want none/0.10", got.AttackType, got.AttackConfidence)
	}
}

func TestClassifyNilEvent(t *testing.T) {
	fv := quiet()
	if got := New().Classify(nil, &fv); got.Label != models.LabelBenign {
		t.Errorf("nil event label = %s, want benign", got.Label)
	}
}

func TestTablesEndWithCatchAll(t *testing.T) {
	v := VerdictRules()
	if last := v[len(v)-1]; !last.Match(&models.FeatureVector{}, nil) {
		t.Error("last verdict rule must match every input")
	}
	s := SubtypeRules()
	if last := s[len(s)-1]; !last.Match(&models.FeatureVector{}) {
		t.Error("last subtype rule must match every input")
	}
	if len(v) != 7 || len(s) != 7 {
		t.Errorf("table sizes = %d/%d, want 7/7", len(v), len(s))
	}
}

// A dozen rapid failures from one source with rotating passwords.
func TestBruteForceScenario(t *testing.T) {
	var pool []models.Event
	for i := 0; i < 12; i++ {
		kind := "cowrie.login.failed"
		if i == 3 || i == 7 {
			kind = "cowrie.command.input"
		}
		pool = append(pool, models.Event{
			SourceAddress: "198.51.100.9",
			Timestamp:     models.FromMillis(int64(5_000_000 + i*400)),
			Username:      "root",
			Password:      fmt.Sprintf("hunter%d", i%8),
			EventID:       kind,
		})
	}
	current := pool[len(pool)-1]
	fv := features.Extract(current, pool)

	got := New().Classify(&current, &fv)
	if got.Label != models.LabelAttack {
		t.Fatalf("label = %s, want attack", got.Label)
	}
	if got.AttackType != models.AttackBruteForce {
		t.Errorf("attack type = %s, want brute_force", got.AttackType)
	}
}
