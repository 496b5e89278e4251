// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, ""},
		{"short token secret", func(c *Config) { c.Security.ServiceTokenSecret = "short" }, "SERVICE_TOKEN_SECRET"},
		{"file store without path", func(c *Config) { c.Aggregate.SnapshotPath = "" }, "SNAPSHOT_PATH"},
		{"badger without path", func(c *Config) {
			c.Aggregate.Store = StoreBadger
			c.Aggregate.BadgerPath = ""
		}, "BADGER_PATH"},
		{"zero timestamp cap", func(c *Config) { c.Aggregate.TimestampCap = 0 }, "TIMESTAMP_CAP"},
		{"zero backlog", func(c *Config) { c.Feed.BacklogSize = 0 }, "FEED_BACKLOG_SIZE"},
		{"tiny client buffer", func(c *Config) { c.Feed.ClientBuffer = 1 }, "FEED_CLIENT_BUFFER"},
		{"nats bad url", func(c *Config) {
			c.NATS.Enabled = true
			c.NATS.URL = "http://localhost:4222"
		}, "NATS_URL"},
		{"nats no subject", func(c *Config) {
			c.NATS.Enabled = true
			c.NATS.Subject = ""
		}, "NATS_SUBJECT"},
		{"nats disabled ignores url", func(c *Config) { c.NATS.URL = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8000}
	if s.Addr() != "127.0.0.1:8000" {
		t.Errorf("Addr = %q", s.Addr())
	}
}
