// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

// Package auth verifies the optional service token presented by honeypot
// sensors on the submission endpoint.
//
// Tokens are HS256 JWTs signed with the shared security.service_token_secret
// and sent as "Authorization: Bearer <token>". Honeyscope never issues
// tokens; sensors are provisioned out of band. When no secret is
// configured the check is disabled and every submission is accepted.
package auth
