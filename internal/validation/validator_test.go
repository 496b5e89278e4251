// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

type sample struct {
	Address string   `json:"src_ip" validate:"required,ip"`
	Kind    string   `json:"kind,omitempty" validate:"omitempty,oneof=a b"`
	Logs    []string `json:"logs" validate:"max=2"`
	Name    string   `validate:"omitempty,min=3"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     sample
		wantField string
		wantMsg   string
	}{
		{"valid ipv4", sample{Address: "1.2.3.4"}, "", ""},
		{"valid ipv6", sample{Address: "2001:db8::1"}, "", ""},
		{"missing address", sample{}, "src_ip", "src_ip is required"},
		{"bad address", sample{Address: "not-an-ip"}, "src_ip", "src_ip must be a valid IP address"},
		{"oneof", sample{Address: "1.2.3.4", Kind: "c"}, "kind", "kind must be one of: a b"},
		{"slice max", sample{Address: "1.2.3.4", Logs: []string{"1", "2", "3"}}, "logs", "logs must be at most 2 entries"},
		{"string min", sample{Address: "1.2.3.4", Name: "ab"}, "Name", "Name must be at least 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !err.HasField(tt.wantField) {
				t.Errorf("fields = %+v, want %s", err.Fields, tt.wantField)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationErrorJoinsMessages(t *testing.T) {
	err := ValidateStruct(&sample{Address: "x", Kind: "z"})
	if err == nil || len(err.Fields) != 2 {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("messages not joined: %q", err.Error())
	}

	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty error message")
	}
}
