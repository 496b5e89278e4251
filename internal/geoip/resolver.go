// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package geoip

import (
	"errors"
	"fmt"
	"net"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oschwald/geoip2-golang"

	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/metrics"
)

// ErrNoDatabase is returned by Open and DiscoverDatabase when no database
// file can be found.
var ErrNoDatabase = errors.New("geoip: no GeoLite2-Country database found")

// EnvDatabasePath overrides candidate discovery when geoip.database_path is unset.
const EnvDatabasePath = "GEOIP_DB_PATH"

// DefaultCacheSize is used when Config.CacheSize is not positive.
const DefaultCacheSize = 4096

var candidatePaths = []string{
	"GeoLite2-Country.mmdb",
	"data/GeoLite2-Country.mmdb",
	"/usr/share/GeoIP/GeoLite2-Country.mmdb",
}

// Config configures the resolver.
type Config struct {
	DatabasePath string
	CacheSize    int
}

// Lookuper resolves an address to a country code.
type Lookuper interface {
	LookupCountry(ip string) (string, bool)
}

// countryReader is the subset of *geoip2.Reader used here.
type countryReader interface {
	Country(ip net.IP) (*geoip2.Country, error)
	Close() error
}

// Resolver implements Lookuper over a GeoLite2 database. A Resolver with no
// database answers every lookup with "absent".
type Resolver struct {
	reader countryReader
	cache  *lru.Cache[string, string]
	path   string
}

// DiscoverDatabase returns the first existing database path, trying explicit,
// then $GEOIP_DB_PATH, then the built-in candidates.
func DiscoverDatabase(explicit string) (string, error) {
	if explicit != "" {
		if fileExists(explicit) {
			return explicit, nil
		}
		return "", fmt.Errorf("%w at %s", ErrNoDatabase, explicit)
	}
	if env := os.Getenv(EnvDatabasePath); env != "" && fileExists(env) {
		return env, nil
	}
	for _, p := range candidatePaths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", ErrNoDatabase
}

// Open discovers and opens the database.
func Open(cfg Config) (*Resolver, error) {
	path, err := DiscoverDatabase(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database %s: %w", path, err)
	}

	logging.Info().Str("path", path).Msg("GeoIP database loaded")
	return newResolver(reader, path, cfg.CacheSize), nil
}

// Disabled returns a resolver without a database.
func Disabled() *Resolver {
	return newResolver(nil, "", 1)
}

func newResolver(reader countryReader, path string, cacheSize int) *Resolver {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	// lru.New only fails for non-positive sizes.
	cache, _ := lru.New[string, string](cacheSize)
	return &Resolver{reader: reader, cache: cache, path: path}
}

// Available reports whether a database is loaded.
func (r *Resolver) Available() bool {
	return r.reader != nil
}

// Path returns the loaded database path, or "".
func (r *Resolver) Path() string {
	return r.path
}

// LookupCountry returns the ISO country code for ip. ok is false for
// private, reserved or malformed addresses, unknown addresses, and when no
// database is loaded.
func (r *Resolver) LookupCountry(ip string) (string, bool) {
	if r.reader == nil {
		metrics.RecordGeoLookup("unavailable")
		return "", false
	}

	if code, ok := r.cache.Get(ip); ok {
		metrics.GeoCacheHits.Inc()
		return code, code != ""
	}

	code := r.lookup(ip)
	r.cache.Add(ip, code)
	return code, code != ""
}

func (r *Resolver) lookup(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil || !routable(parsed) {
		metrics.RecordGeoLookup("skipped")
		return ""
	}

	rec, err := r.reader.Country(parsed)
	if err != nil || rec == nil || rec.Country.IsoCode == "" {
		metrics.RecordGeoLookup("miss")
		return ""
	}
	metrics.RecordGeoLookup("hit")
	return rec.Country.IsoCode
}

// Close releases the database.
func (r *Resolver) Close() error {
	if r.reader == nil {
		return nil
	}
	return r.reader.Close()
}

func routable(ip net.IP) bool {
	return !ip.IsPrivate() &&
		!ip.IsLoopback() &&
		!ip.IsUnspecified() &&
		!ip.IsLinkLocalUnicast() &&
		!ip.IsLinkLocalMulticast() &&
		!ip.IsMulticast()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
