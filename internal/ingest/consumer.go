// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/honeyscope/internal/logging"
	"github.com/tomtom215/honeyscope/internal/metrics"
	"github.com/tomtom215/honeyscope/internal/models"
	"github.com/tomtom215/honeyscope/internal/window"
)

// Processor runs one event through the pipeline.
type Processor interface {
	Process(ctx context.Context, current models.Event, pool []models.Event) models.EnrichedEvent
}

// ConsumerConfig configures a Consumer.
type ConsumerConfig struct {
	Topic string

	// Window is the per-source history span used as the feature window.
	Window time.Duration

	// MaxEventsPerSecond throttles processing. Zero disables throttling.
	MaxEventsPerSecond float64

	// SweepInterval controls how often idle sources are evicted.
	SweepInterval time.Duration
}

// Consumer feeds streamed capture events into the pipeline.
type Consumer struct {
	subscriber message.Subscriber
	processor  Processor
	history    *window.History
	limiter    *rate.Limiter
	cfg        ConsumerConfig
	log        zerolog.Logger
}

// NewConsumer creates a Consumer reading cfg.Topic from subscriber.
func NewConsumer(subscriber message.Subscriber, processor Processor, cfg ConsumerConfig) *Consumer {
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = cfg.Window
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.MaxEventsPerSecond > 0 {
		burst := int(cfg.MaxEventsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.MaxEventsPerSecond), burst)
	}

	return &Consumer{
		subscriber: subscriber,
		processor:  processor,
		history:    window.NewHistory(cfg.Window, window.DefaultMaxPerSource),
		limiter:    limiter,
		cfg:        cfg,
		log:        logging.WithComponent("capture-consumer"),
	}
}

// Serve consumes until ctx is canceled or the subscription ends.
// Designed for suture supervision.
func (c *Consumer) Serve(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.cfg.Topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", c.cfg.Topic, err)
	}

	c.log.Info().Str("topic", c.cfg.Topic).Dur("window", c.cfg.Window).Msg("Capture event consumer started")

	sweep := time.NewTicker(c.cfg.SweepInterval)
	defer sweep.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sweep.C:
			n := c.history.Sweep()
			c.log.Debug().Int("sources", n).Msg("Source history swept")
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if err := c.handle(ctx, msg); err != nil {
				return err
			}
		}
	}
}

// handle processes one message. Undecodable messages are acked and
// dropped; only context cancellation is returned.
func (c *Consumer) handle(ctx context.Context, msg *message.Message) error {
	if err := c.limiter.Wait(ctx); err != nil {
		msg.Nack()
		return err
	}

	metrics.NATSMessagesConsumed.Inc()
	ev, err := DecodeLog(msg.Payload)
	if err != nil {
		metrics.NATSMessagesParseFailed.Inc()
		metrics.RecordRejected("stream_decode")
		c.log.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping undecodable capture event")
		msg.Ack()
		return nil
	}

	metrics.RecordIngest("stream")
	if ev.Timestamp.IsZero() {
		ev.Timestamp = models.NewTimestamp(time.Now().UTC())
	}
	pool := c.history.Observe(ev)
	c.processor.Process(ctx, ev, pool)
	msg.Ack()
	return nil
}

// Sources returns the number of sources currently held in history.
func (c *Consumer) Sources() int {
	return c.history.Len()
}
