// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/honeyscope/internal/logging"
)

// MinServiceTokenSecretLength matches the sensor token verifier.
const MinServiceTokenSecretLength = 32

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateAggregate(); err != nil {
		return err
	}
	if err := c.validateFeed(); err != nil {
		return err
	}
	return c.validateNATS()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console", "":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1 when rate limiting is enabled")
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
		}
	}
	if s := c.Security.ServiceTokenSecret; s != "" && len(s) < MinServiceTokenSecretLength {
		return fmt.Errorf("SERVICE_TOKEN_SECRET must be at least %d characters", MinServiceTokenSecretLength)
	}
	return nil
}

func (c *Config) validateAggregate() error {
	switch c.Aggregate.Store {
	case StoreFile:
		if c.Aggregate.SnapshotPath == "" {
			return fmt.Errorf("SNAPSHOT_PATH is required when AGGREGATE_STORE=file")
		}
	case StoreBadger:
		if c.Aggregate.BadgerPath == "" {
			return fmt.Errorf("BADGER_PATH is required when AGGREGATE_STORE=badger")
		}
	default:
		return fmt.Errorf("AGGREGATE_STORE must be %q or %q, got %q", StoreFile, StoreBadger, c.Aggregate.Store)
	}
	if c.Aggregate.TimestampCap < 1 {
		return fmt.Errorf("TIMESTAMP_CAP must be at least 1")
	}
	return nil
}

func (c *Config) validateFeed() error {
	if c.Feed.BacklogSize < 1 {
		return fmt.Errorf("FEED_BACKLOG_SIZE must be at least 1")
	}
	if c.Feed.ClientBuffer < 2 {
		return fmt.Errorf("FEED_CLIENT_BUFFER must be at least 2")
	}
	return nil
}

func (c *Config) validateNATS() error {
	if !c.NATS.Enabled {
		return nil
	}
	u, err := url.Parse(c.NATS.URL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("NATS_URL %q is not a valid URL", c.NATS.URL)
	}
	if u.Scheme != "nats" && u.Scheme != "tls" {
		return fmt.Errorf("NATS_URL scheme must be nats or tls, got %q", u.Scheme)
	}
	if c.NATS.Subject == "" {
		return fmt.Errorf("NATS_SUBJECT is required when NATS_ENABLED=true")
	}
	if c.NATS.Window <= 0 {
		return fmt.Errorf("NATS_WINDOW must be positive")
	}
	if c.NATS.MaxEventsPerSecond < 0 {
		return fmt.Errorf("NATS_MAX_EVENTS_PER_SECOND must not be negative")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
