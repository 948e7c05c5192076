package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ldamasio/robson/cli/internal/log"
)

// Broker is the pub/sub transport between price producers and the hub.
type Broker interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	// Subscribe returns a channel of payloads, closed when the
	// subscription ends, and a function that ends it.
	Subscribe(ctx context.Context, channel string) (<-chan []byte, func() error, error)
}

// RedisBroker implements Broker on Redis Pub/Sub.
type RedisBroker struct {
	client *redis.Client
}

// NewRedisBroker connects lazily to addr.
func NewRedisBroker(addr string) *RedisBroker {
	return &RedisBroker{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Ping checks connectivity.
func (b *RedisBroker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Publish sends payload on channel.
func (b *RedisBroker) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.client.Publish(ctx, channel, payload).Err()
}

// Subscribe waits for the subscription to be confirmed before returning.
func (b *RedisBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, func() error, error) {
	pubsub := b.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("subscribing to %s: %w", channel, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, pubsub.Close, nil
}

// Close releases the Redis connection pool.
func (b *RedisBroker) Close() error {
	return b.client.Close()
}

// Relay forwards every payload published on channel to the hub until ctx is
// done or the subscription ends.
func Relay(ctx context.Context, broker Broker, channel string, hub *Hub) error {
	messages, unsubscribe, err := broker.Subscribe(ctx, channel)
	if err != nil {
		return err
	}
	defer func() { _ = unsubscribe() }()

	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if !hub.Broadcast(ctx, msg) {
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// Simulator publishes a random walk for one symbol. It stands in for the
// exchange feed in development.
type Simulator struct {
	Broker   Broker
	Channel  string
	Symbol   string
	Price    float64
	Interval time.Duration
	Logger   log.Logger
	now      func() time.Time
}

// Next advances the walk by at most ±5 and returns the new tick.
func (s *Simulator) Next() Tick {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	s.Price += (rand.Float64()*100 - 50) / 10
	return Tick{Symbol: s.Symbol, Price: s.Price, Timestamp: now().Unix()}
}

// Run publishes one tick per interval until ctx is done. Publish errors are
// logged and the walk continues.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			payload, err := json.Marshal(s.Next())
			if err != nil {
				s.Logger.Error("encoding tick", "error", err)
				continue
			}
			if err := s.Broker.Publish(ctx, s.Channel, payload); err != nil {
				s.Logger.Warn("publish failed", "channel", s.Channel, "error", err)
			}
		}
	}
}
