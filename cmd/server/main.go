// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/honeyscope/internal/aggregate"
	"github.com/tomtom215/honeyscope/internal/api"
	"github.com/tomtom215/honeyscope/internal/auth"
	"github.com/tomtom215/honeyscope/internal/classifier"
	"github.com/tomtom215/honeyscope/internal/config"
	"github.com/tomtom215/honeyscope/internal/enrich"
	"github.com/tomtom215/honeyscope/internal/geoip"
	"github.com/tomtom215/honeyscope/internal/ingest"
	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/pipeline"
	"github.com/tomtom215/honeyscope/internal/supervisor"
	"github.com/tomtom215/honeyscope/internal/supervisor/services"
	ws "github.com/tomtom215/honeyscope/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("aggregate_store", cfg.Aggregate.Store).
		Bool("nats_enabled", cfg.NATS.Enabled).
		Bool("service_token", cfg.Security.ServiceTokenSecret != "").
		Msg("Starting Honeyscope")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	geo := openGeo(&cfg.GeoIP)
	defer func() {
		if err := geo.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing GeoIP database")
		}
	}()

	snapshots, badgerStore, err := openSnapshotStore(&cfg.Aggregate)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open snapshot store")
	}
	breaker := aggregate.NewBreakerStore(snapshots, aggregate.BreakerConfig{
		FailureThreshold: cfg.Aggregate.BreakerThreshold,
		Timeout:          cfg.Aggregate.BreakerTimeout,
	})

	store := aggregate.New(ctx, breaker, cfg.Aggregate.TimestampCap)
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := store.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing aggregate store")
		}
	}()

	hub := ws.NewHub(ws.Config{
		BacklogSize:  cfg.Feed.BacklogSize,
		ClientBuffer: cfg.Feed.ClientBuffer,
	})

	pipe := pipeline.New(classifier.New(), enrich.New(geo), store, hub)

	var verifier *auth.TokenVerifier
	if cfg.Security.ServiceTokenSecret != "" {
		verifier, err = auth.NewTokenVerifier(cfg.Security.ServiceTokenSecret)
		if err != nil {
			logging.Fatal().Err(err).Msg("Invalid service token secret")
		}
	}

	handler := api.NewHandler(api.HandlerConfig{
		Pipeline:       pipe,
		Stats:          store,
		Hub:            hub,
		Geo:            geo,
		Version:        version,
		AllowedOrigins: cfg.Security.CORSOrigins,
		Readiness: []api.ReadinessCheck{
			{Name: "snapshot_store", Check: func(context.Context) error {
				if state := breaker.State(); state == "open" {
					return fmt.Errorf("snapshot breaker %s", state)
				}
				return nil
			}},
		},
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)), verifier)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		IdleTimeout:       120 * time.Second,
		// WriteTimeout stays unset: websocket connections are long-lived.
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFromConfig(&cfg.Supervisor))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if badgerStore != nil {
		tree.AddDataService(services.NewBadgerGCService(badgerStore, 5*time.Minute))
	}
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	if cfg.NATS.Enabled {
		svc, err := initStreamConsumer(&cfg.NATS, pipe)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize NATS consumer")
		}
		tree.AddMessagingService(svc)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Honeyscope stopped")
}

// openGeo opens the GeoLite2 database, or returns a resolver that finds
// nothing when no database is available.
func openGeo(cfg *config.GeoIPConfig) *geoip.Resolver {
	resolver, err := geoip.Open(geoip.Config{DatabasePath: cfg.DatabasePath, CacheSize: cfg.CacheSize})
	if err != nil {
		logging.Warn().Err(err).Msg("GeoIP lookups disabled, events will carry no country")
		return geoip.Disabled()
	}
	logging.Info().Str("path", resolver.Path()).Msg("GeoIP database loaded")
	return resolver
}

// openSnapshotStore opens the configured backend. The BadgerStore return is
// non-nil only for the badger backend so its GC service can be scheduled.
func openSnapshotStore(cfg *config.AggregateConfig) (aggregate.SnapshotStore, *aggregate.BadgerStore, error) {
	switch cfg.Store {
	case config.StoreBadger:
		bs, err := aggregate.OpenBadgerStore(cfg.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		logging.Info().Str("path", cfg.BadgerPath).Msg("Aggregate snapshots stored in BadgerDB")
		return bs, bs, nil
	default:
		logging.Info().Str("path", cfg.SnapshotPath).Msg("Aggregate snapshots stored in JSON file")
		return aggregate.NewFileStore(cfg.SnapshotPath), nil, nil
	}
}

// initStreamConsumer subscribes to capture events on NATS.
func initStreamConsumer(cfg *config.NATSConfig, proc ingest.Processor) (*services.ConsumerService, error) {
	subscriber, err := ingest.NewNATSSubscriber(ingest.NATSConfig{
		URL:           cfg.URL,
		QueueGroup:    cfg.QueueGroup,
		MaxReconnects: cfg.MaxReconnects,
		ReconnectWait: cfg.ReconnectWait,
	})
	if err != nil {
		return nil, err
	}

	consumer := ingest.NewConsumer(subscriber, proc, ingest.ConsumerConfig{
		Topic:              cfg.Subject,
		Window:             cfg.Window,
		MaxEventsPerSecond: cfg.MaxEventsPerSecond,
	})
	logging.Info().
		Str("url", cfg.URL).
		Str("subject", cfg.Subject).
		Dur("window", cfg.Window).
		Msg("NATS capture consumer configured")
	return services.NewConsumerService(consumer, subscriber), nil
}
