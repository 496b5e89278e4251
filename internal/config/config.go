// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Security   SecurityConfig   `koanf:"security"`
	GeoIP      GeoIPConfig      `koanf:"geoip"`
	Aggregate  AggregateConfig  `koanf:"aggregate"`
	Feed       FeedConfig       `koanf:"feed"`
	NATS       NATSConfig       `koanf:"nats"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes file and line in each entry.
	Caller bool `koanf:"caller"`
}

// SecurityConfig holds CORS, rate limiting and sensor authentication.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// ServiceTokenSecret enables HS256 bearer checks on event submission.
	// Empty disables the check.
	ServiceTokenSecret string `koanf:"service_token_secret"`
}

// GeoIPConfig locates the GeoLite2-Country database.
type GeoIPConfig struct {
	// DatabasePath overrides discovery. Empty searches GEOIP_DB_PATH and
	// the default candidate paths.
	DatabasePath string `koanf:"database_path"`
	CacheSize    int    `koanf:"cache_size"`
}

// Aggregate snapshot backends.
const (
	StoreFile   = "file"
	StoreBadger = "badger"
)

// AggregateConfig selects where the durable snapshot lives.
type AggregateConfig struct {
	Store            string        `koanf:"store"`
	SnapshotPath     string        `koanf:"snapshot_path"`
	BadgerPath       string        `koanf:"badger_path"`
	TimestampCap     int           `koanf:"timestamp_cap"`
	BreakerThreshold uint32        `koanf:"breaker_threshold"`
	BreakerTimeout   time.Duration `koanf:"breaker_timeout"`
}

// FeedConfig sizes the live feed.
type FeedConfig struct {
	BacklogSize  int `koanf:"backlog_size"`
	ClientBuffer int `koanf:"client_buffer"`
}

// NATSConfig configures the optional streaming ingest.
type NATSConfig struct {
	Enabled            bool          `koanf:"enabled"`
	URL                string        `koanf:"url"`
	Subject            string        `koanf:"subject"`
	QueueGroup         string        `koanf:"queue_group"`
	Window             time.Duration `koanf:"window"`
	MaxEventsPerSecond float64       `koanf:"max_events_per_second"`
	MaxReconnects      int           `koanf:"max_reconnects"`
	ReconnectWait      time.Duration `koanf:"reconnect_wait"`
}

// SupervisorConfig holds suture tree settings.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}
