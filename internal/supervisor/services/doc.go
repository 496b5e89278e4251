// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

/*
Package services adapts Honeyscope components to suture.Service.

  - HTTPServerService: ListenAndServe with graceful Shutdown
  - WebSocketHubService: delegates to Hub.RunWithContext
  - ConsumerService: runs the stream consumer and closes its subscriber
  - BadgerGCService: periodic BadgerDB value-log GC

Each wrapper takes a small interface so tests can use fakes, and
implements fmt.Stringer so suture logs a readable name.
*/
package services
