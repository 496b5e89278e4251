// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"

	"github.com/tomtom215/honeyscope/internal/models"
)

type recordingProcessor struct {
	mu    sync.Mutex
	calls []call
	done  chan struct{}
	want  int
}

type call struct {
	current models.Event
	pool    []models.Event
}

func newRecordingProcessor(want int) *recordingProcessor {
	return &recordingProcessor{done: make(chan struct{}), want: want}
}

func (p *recordingProcessor) Process(_ context.Context, current models.Event, pool []models.Event) models.EnrichedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call{current: current, pool: pool})
	if len(p.calls) == p.want {
		close(p.done)
	}
	return models.EnrichedEvent{}
}

func newPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		Persistent:                     true,
		BlockPublishUntilSubscriberAck: true,
	}, watermill.NopLogger{})
}

func publish(t *testing.T, ps *gochannel.GoChannel, payloads ...string) {
	t.Helper()
	for _, p := range payloads {
		if err := ps.Publish("honeypot.auth", message.NewMessage(watermill.NewUUID(), []byte(p))); err != nil {
			t.Fatal(err)
		}
	}
}

func TestConsumerBuildsPerSourceWindow(t *testing.T) {
	ps := newPubSub()
	defer ps.Close()

	proc := newRecordingProcessor(4)
	c := NewConsumer(ps, proc, ConsumerConfig{Topic: "honeypot.auth", Window: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- c.Serve(ctx) }()

	publish(t, ps,
		`{"src_ip":"1.2.3.4","eventid":"cowrie.login.failed"}`,
		`{"ip":"5.6.7.8","eventid":"cowrie.login.failed"}`,
		`not json`,
		`{"source_ip":"1.2.3.4","eventid":"cowrie.login.failed"}`,
		`{"src_ip":"1.2.3.4","eventid":"cowrie.login.success"}`,
	)

	select {
	case <-proc.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for events")
	}

	proc.mu.Lock()
	var last call
	for _, pc := range proc.calls {
		if pc.current.EventID == "cowrie.login.success" {
			last = pc
		}
	}
	proc.mu.Unlock()

	if last.current.EventID == "" {
		t.Fatal("success event never reached the processor")
	}
	if len(last.pool) != 3 {
		t.Errorf("window for 1.2.3.4 = %d events, want 3", len(last.pool))
	}
	for _, ev := range last.pool {
		if ev.SourceAddress != "1.2.3.4" {
			t.Errorf("window leaked source %s", ev.SourceAddress)
		}
		if ev.Timestamp.IsZero() {
			t.Error("streamed event left without a timestamp")
		}
	}
	if c.Sources() != 2 {
		t.Errorf("sources = %d, want 2", c.Sources())
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve returned %v, want context.Canceled", err)
	}
}

func TestConsumerThrottles(t *testing.T) {
	ps := newPubSub()
	defer ps.Close()

	proc := newRecordingProcessor(3)
	c := NewConsumer(ps, proc, ConsumerConfig{Topic: "honeypot.auth", MaxEventsPerSecond: 2})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = c.Serve(ctx) }()

	start := time.Now()
	publish(t, ps,
		`{"src_ip":"1.1.1.1"}`,
		`{"src_ip":"1.1.1.1"}`,
		`{"src_ip":"1.1.1.1"}`,
	)
	select {
	case <-proc.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for events")
	}
	// A burst of two passes at once; the third waits for a token.
	if elapsed := time.Since(start); elapsed < 400*time.Millisecond {
		t.Errorf("three events at 2/s took %v, want throttling", elapsed)
	}
}

func TestRawUnmarshaler(t *testing.T) {
	msg, err := rawUnmarshaler{}.Unmarshal(&natsgo.Msg{Data: []byte(`{"src_ip":"1.2.3.4"}`)})
	if err != nil {
		t.Fatal(err)
	}
	if msg.UUID == "" {
		t.Error("expected generated UUID")
	}
	if string(msg.Payload) != `{"src_ip":"1.2.3.4"}` {
		t.Errorf("payload = %s", msg.Payload)
	}

	withHeader := &natsgo.Msg{Data: []byte(`{}`), Header: natsgo.Header{}}
	withHeader.Header.Set("_watermill_message_uuid", "fixed-id")
	msg, _ = rawUnmarshaler{}.Unmarshal(withHeader)
	if msg.UUID != "fixed-id" {
		t.Errorf("uuid = %s, want fixed-id", msg.UUID)
	}
}
