// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package aggregate maintains the process-wide attack counters and their
durable snapshot.

The Store owns two kinds of state:

  - durable totals (total attacks, unique source addresses, unique
    countries, a capped timestamp history), persisted after every change
  - in-memory per-country attack counts, cleared by Reset

Only events labeled attack change the counters. Counters and set
cardinalities never decrease except through ResetDurable.

Persistence goes through a SnapshotStore. Two implementations exist:
FileStore writes a single JSON document atomically (temp file + rename),
and BadgerStore keeps the document under one key in BadgerDB. A missing
or corrupt snapshot is replaced with the empty default at startup and
logged; it never prevents the Store from serving.

Concurrency: one mutex guards the in-memory state. Snapshot writes run
under a separate mutex and skip states older than the last one written,
so slow disk I/O never blocks readers and never reorders snapshots.
*/
package aggregate
