// Package chatbus fans chat events out across server instances through
// Redis pub/sub.
package chatbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Bus publishes chat events to a Redis channel and forwards received ones
// to a local sink.
type Bus struct {
	rdb     *goredis.Client
	channel string
	log     *slog.Logger
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, logger *slog.Logger, cfg config.RedisConfig) (*Bus, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 5 * time.Second
	}
	rdb := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewWithClient(logger, rdb, cfg.Channel), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(logger *slog.Logger, rdb *goredis.Client, channel string) *Bus {
	if channel == "" {
		channel = "crm:chat-events"
	}
	return &Bus{
		rdb:     rdb,
		channel: channel,
		log:     logger.With("component", "chat_bus"),
	}
}

// Publish sends the event to every subscribed instance, this one included.
func (b *Bus) Publish(ctx context.Context, event domain.ChatEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal chat event: %w", err)
	}
	if err := b.rdb.Publish(ctx, b.channel, raw).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Sink receives events forwarded from Redis.
type Sink interface {
	Deliver(event domain.ChatEvent) int
}

// Forward subscribes to the channel and hands every event to sink until
// ctx is done. The subscription is confirmed before the loop starts so a
// failing Redis surfaces as an error.
func (b *Bus) Forward(ctx context.Context, sink Sink) error {
	if sink == nil {
		return errors.New("chat bus: sink required")
	}
	sub := b.rdb.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("redis subscribe: %w", err)
	}
	b.log.Info("chat bus forwarding", slog.String("channel", b.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return errors.New("redis subscription closed")
			}
			var event domain.ChatEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.log.Warn("bad chat event payload", slog.String("error", err.Error()))
				continue
			}
			sink.Deliver(event)
		}
	}
}

// Ping checks the Redis connection.
func (b *Bus) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

// Close releases the Redis client.
func (b *Bus) Close() error {
	return b.rdb.Close()
}
