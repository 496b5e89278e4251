// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/metrics"
)

type contextKey string

// SensorContextKey holds the verified sensor name.
const SensorContextKey contextKey = "sensor"

// SensorFromContext returns the verified sensor name, or "".
func SensorFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(SensorContextKey).(string); ok {
		return s
	}
	return ""
}

// RequireSensorToken rejects requests without a valid bearer token. A nil
// verifier disables the check.
func RequireSensorToken(v *TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if v == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := v.Verify(bearerToken(r))
			if err != nil {
				metrics.RecordRejected("unauthorized")
				logging.Ctx(r.Context()).Warn().Err(err).Str("remote", r.RemoteAddr).Msg("Sensor token rejected")
				writeUnauthorized(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), SensorContextKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	msg := ErrInvalidToken.Error()
	if errors.Is(err, ErrMissingToken) {
		msg = ErrMissingToken.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="honeyscope"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": msg})
}
