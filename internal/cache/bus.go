// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"lawsite/internal/models"
)

// InvalidationChannel is the pub/sub channel every process listens on.
const InvalidationChannel = "lawsite:invalidate"

const (
	msgSettings   = "settings"
	msgPagePrefix = "page:"
)

// Invalidation names what a writer changed.
type Invalidation struct {
	Settings bool
	Page     models.PageKey // set when a page document changed
}

// String encodes the invalidation as a bus message.
func (m Invalidation) String() string {
	if m.Settings {
		return msgSettings
	}
	return msgPagePrefix + string(m.Page)
}

// ParseInvalidation decodes a bus message.
func ParseInvalidation(payload string) (Invalidation, error) {
	switch {
	case payload == msgSettings:
		return Invalidation{Settings: true}, nil
	case strings.HasPrefix(payload, msgPagePrefix) && len(payload) > len(msgPagePrefix):
		return Invalidation{Page: models.PageKey(strings.TrimPrefix(payload, msgPagePrefix))}, nil
	}
	return Invalidation{}, fmt.Errorf("unknown invalidation message %q", payload)
}

// InvalidationBus fans invalidations out to every running process so each
// one drops its in-memory settings and its page entries.
type InvalidationBus struct {
	client *redis.Client
}

// NewInvalidationBus creates a bus on the given Valkey client.
func NewInvalidationBus(client *redis.Client) *InvalidationBus {
	return &InvalidationBus{client: client}
}

// Publish announces an invalidation to all subscribers.
func (b *InvalidationBus) Publish(ctx context.Context, m Invalidation) error {
	if err := b.client.Publish(ctx, InvalidationChannel, m.String()).Err(); err != nil {
		return fmt.Errorf("publish invalidation: %w", err)
	}
	slog.Debug("invalidation published", "message", m.String())
	return nil
}

// Subscribe delivers invalidations to handle until ctx is done. Malformed
// messages are logged and skipped.
func (b *InvalidationBus) Subscribe(ctx context.Context, handle func(Invalidation)) error {
	sub := b.client.Subscribe(ctx, InvalidationChannel)
	defer sub.Close()

	// Wait for the subscription to be confirmed before reading.
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", InvalidationChannel, err)
	}
	slog.Info("listening for invalidations", "channel", InvalidationChannel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			inv, err := ParseInvalidation(msg.Payload)
			if err != nil {
				slog.Warn("ignoring invalidation", "error", err)
				continue
			}
			handle(inv)
		}
	}
}
