// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package services

import (
	"context"
	"errors"
	"io"

	"github.com/tomtom215/honeyscope/internal/logging"
)

// StreamConsumer is satisfied by *ingest.Consumer.
type StreamConsumer interface {
	Serve(ctx context.Context) error
}

// ConsumerService runs the stream consumer. The subscriber is closed once,
// when the service stops for good.
type ConsumerService struct {
	consumer   StreamConsumer
	subscriber io.Closer
}

// NewConsumerService wraps consumer. subscriber may be nil.
func NewConsumerService(consumer StreamConsumer, subscriber io.Closer) *ConsumerService {
	return &ConsumerService{consumer: consumer, subscriber: subscriber}
}

// Serve returns the consumer's error so the supervisor restarts it. On
// cancellation the subscriber is closed.
func (c *ConsumerService) Serve(ctx context.Context) error {
	err := c.consumer.Serve(ctx)
	if ctx.Err() == nil {
		if err == nil {
			err = errors.New("stream subscription ended")
		}
		return err
	}

	if c.subscriber != nil {
		if cerr := c.subscriber.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close stream subscriber")
		}
	}
	return ctx.Err()
}

func (c *ConsumerService) String() string {
	return "stream-consumer"
}
