package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ugchub/ugchub-backend/internal/logging"
)

const (
	DefaultChannelPrefix = "ugchub:events:" // channel per topic: ugchub:events:{topic}
	publishTimeout       = 2 * time.Second
	forwardBuffer        = 256
)

// RedisPublisher forwards hub events to Redis Pub/Sub so other processes
// (a websocket gateway, an audit consumer) can follow store changes.
type RedisPublisher struct {
	client        *redis.Client
	channelPrefix string
	buffer        int
}

// NewRedisPublisher creates a RedisPublisher. An empty prefix uses DefaultChannelPrefix.
func NewRedisPublisher(client *redis.Client, channelPrefix string) *RedisPublisher {
	if channelPrefix == "" {
		channelPrefix = DefaultChannelPrefix
	}
	return &RedisPublisher{
		client:        client,
		channelPrefix: channelPrefix,
		buffer:        forwardBuffer,
	}
}

// Attach subscribes the publisher to hub. Events are queued and sent from
// a single goroutine, so a slow Redis never holds up the mutating request;
// when the queue is full the event is dropped. The returned func
// unsubscribes, then waits until the queued events have been sent.
func (p *RedisPublisher) Attach(hub *Hub) func() {
	f := &forwarder{ch: make(chan Event, p.buffer), done: make(chan struct{})}
	go f.run(p)

	unsubscribe := hub.Subscribe(f.enqueue)

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			f.close()
		})
	}
}

type forwarder struct {
	mu     sync.Mutex
	closed bool
	ch     chan Event
	done   chan struct{}
}

// enqueue may still be called by a delivery that raced with unsubscribe,
// hence the closed flag.
func (f *forwarder) enqueue(ev Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	select {
	case f.ch <- ev:
	default:
		logging.Background().Warnf("events.redis_publish", "queue full, dropping %s for %s", ev.Type, ev.Subject)
	}
}

func (f *forwarder) run(p *RedisPublisher) {
	defer close(f.done)
	for ev := range f.ch {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := p.Publish(ctx, ev); err != nil {
			logging.Background().Error("events.redis_publish", err)
		}
		cancel()
	}
}

func (f *forwarder) close() {
	f.mu.Lock()
	f.closed = true
	close(f.ch)
	f.mu.Unlock()
	<-f.done
}

// Publish sends one event to the channel for its topic.
func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, p.Channel(ev.Topic), data).Err(); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", ev.Type, err)
	}
	return nil
}

// Channel returns the Redis channel name for a topic.
func (p *RedisPublisher) Channel(topic string) string {
	return fmt.Sprintf("%s%s", p.channelPrefix, topic)
}
