// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package services

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/models"
	"github.com/tomtom215/honeyscope/internal/websocket"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{Level: "info", Format: "console", Output: io.Discard})
}

var (
	_ suture.Service = (*HTTPServerService)(nil)
	_ suture.Service = (*WebSocketHubService)(nil)
	_ suture.Service = (*ConsumerService)(nil)
	_ suture.Service = (*BadgerGCService)(nil)
)

// fakeHTTPServer blocks in ListenAndServe until Shutdown.
type fakeHTTPServer struct {
	listenErr error
	started   chan struct{}
	stop      chan struct{}
	shutdowns atomic.Int32
}

func newFakeHTTPServer() *fakeHTTPServer {
	return &fakeHTTPServer{started: make(chan struct{}, 1), stop: make(chan struct{})}
}

func (f *fakeHTTPServer) ListenAndServe() error {
	f.started <- struct{}{}
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeHTTPServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	close(f.stop)
	return nil
}

func serveAsync(ctx context.Context, svc suture.Service) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	return errCh
}

func waitErr(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("service did not return")
		return nil
	}
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	server := newFakeHTTPServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)
	<-server.started
	cancel()

	if err := waitErr(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if server.shutdowns.Load() != 1 {
		t.Errorf("Shutdown called %d times", server.shutdowns.Load())
	}
}

func TestHTTPServerServiceListenFailure(t *testing.T) {
	server := newFakeHTTPServer()
	server.listenErr = &net.OpError{Op: "listen", Err: errors.New("address already in use")}
	svc := NewHTTPServerService(server, 0)

	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("default timeout = %v", svc.shutdownTimeout)
	}
	err := waitErr(t, serveAsync(context.Background(), svc))
	if err == nil || !errors.Is(err, server.listenErr) {
		t.Errorf("err = %v, want wrapped listen error", err)
	}
	if svc.String() != "http-server" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestWebSocketHubServiceClosesHubOnShutdown(t *testing.T) {
	hub := websocket.NewHub(websocket.Config{})
	svc := NewWebSocketHubService(hub)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)
	hub.Publish(models.EnrichedEvent{ID: "ev-1"})
	cancel()
	waitErr(t, errCh)

	if _, total := hub.Recent(1); total != 1 {
		t.Errorf("backlog total = %d after shutdown", total)
	}
	if svc.String() != "websocket-hub" {
		t.Errorf("String() = %q", svc.String())
	}
}

type fakeConsumer struct {
	err   error
	calls atomic.Int32
}

func (f *fakeConsumer) Serve(ctx context.Context) error {
	f.calls.Add(1)
	if f.err != nil {
		return f.err
	}
	<-ctx.Done()
	return nil
}

type fakeCloser struct{ closes atomic.Int32 }

func (f *fakeCloser) Close() error {
	f.closes.Add(1)
	return nil
}

func TestConsumerServiceClosesSubscriberOnShutdown(t *testing.T) {
	consumer := &fakeConsumer{}
	closer := &fakeCloser{}
	svc := NewConsumerService(consumer, closer)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)
	time.Sleep(20 * time.Millisecond)
	cancel()

	if err := waitErr(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
	if closer.closes.Load() != 1 {
		t.Errorf("subscriber closed %d times", closer.closes.Load())
	}
}

func TestConsumerServiceReportsFailureForRestart(t *testing.T) {
	boom := errors.New("subscribe failed")
	closer := &fakeCloser{}
	svc := NewConsumerService(&fakeConsumer{err: boom}, closer)

	if err := waitErr(t, serveAsync(context.Background(), svc)); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if closer.closes.Load() != 0 {
		t.Error("subscriber closed on a restartable failure")
	}

	// A consumer that returns nil while ctx is live is treated as a failure.
	ended := NewConsumerService(consumerFunc(func(context.Context) error { return nil }), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := waitErr(t, serveAsync(ctx, ended)); err == nil {
		t.Error("expected error when subscription ends early")
	}
}

type consumerFunc func(context.Context) error

func (f consumerFunc) Serve(ctx context.Context) error { return f(ctx) }

type countingCollector struct{ runs atomic.Int32 }

func (c *countingCollector) RunValueLogGC(float64) error {
	c.runs.Add(1)
	return errors.New("gc rejected")
}

func TestBadgerGCServiceRunsOnInterval(t *testing.T) {
	collector := &countingCollector{}
	svc := NewBadgerGCService(collector, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)

	deadline := time.Now().Add(2 * time.Second)
	for collector.runs.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	waitErr(t, errCh)

	if collector.runs.Load() < 3 {
		t.Errorf("GC ran %d times, want at least 3", collector.runs.Load())
	}
	if NewBadgerGCService(collector, 0).interval != 5*time.Minute {
		t.Error("default interval not applied")
	}
}
