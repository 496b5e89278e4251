// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package geoip resolves source addresses to ISO 3166-1 alpha-2 country codes
using an offline MaxMind GeoLite2-Country database.

Lookups never fail: private, reserved and malformed addresses, addresses
missing from the database, and a missing database all resolve to "absent".
Results (including misses) are kept in a bounded LRU cache keyed by the
address string.

Database discovery order:

 1. the configured path (geoip.database_path)
 2. the GEOIP_DB_PATH environment variable
 3. GeoLite2-Country.mmdb, data/GeoLite2-Country.mmdb,
    /usr/share/GeoIP/GeoLite2-Country.mmdb
*/
package geoip
