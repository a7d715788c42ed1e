package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache/channel"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

const (
	minReconnectDelay = time.Second
	maxReconnectDelay = 30 * time.Second
)

type redisEventListener struct {
	logger   *logrus.Logger
	cache    Client
	mu       sync.RWMutex
	handlers map[string]EventHandler
}

func NewRedisEventListener(logger *logrus.Logger, cache Client) EventListener {
	return &redisEventListener{
		logger:   logger,
		cache:    cache,
		handlers: make(map[string]EventHandler),
	}
}

// RegisterEventSubscriber routes events whose envelope type matches T to
// subscriber.
func RegisterEventSubscriber[T event.Event](listener EventListener, subscriber EventSubscriber[T]) {
	var zero T
	listener.Register(zero.Type(), func(ctx context.Context, raw json.RawMessage) error {
		var ev T
		if err := json.Unmarshal(raw, &ev); err != nil {
			return fmt.Errorf("failed to decode %s: %w", zero.Type(), err)
		}
		return subscriber.OnEvent(ctx, ev)
	})
}

func (r *redisEventListener) Register(eventType string, handler EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = handler
}

// Listen blocks until ctx is done, resubscribing with a growing delay
// whenever the pubsub connection drops.
func (r *redisEventListener) Listen(ctx context.Context, channels ...channel.Channel) {
	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, string(ch))
	}

	delay := minReconnectDelay
	for ctx.Err() == nil {
		if r.consume(ctx, names) {
			delay = minReconnectDelay
		}
		if ctx.Err() != nil {
			break
		}
		r.logger.WithField("retry_in", delay.String()).Warn("redis pubsub disconnected")
		select {
		case <-ctx.Done():
		case <-time.After(delay):
		}
		if delay *= 2; delay > maxReconnectDelay {
			delay = maxReconnectDelay
		}
	}
	r.logger.Info("redis pubsub listener stopped")
}

// consume reports whether at least one message was received before the
// subscription ended.
func (r *redisEventListener) consume(ctx context.Context, names []string) bool {
	pubSub := r.cache.RedisClient().Subscribe(ctx, names...)
	defer func() { _ = pubSub.Close() }()

	stop := context.AfterFunc(ctx, func() { _ = pubSub.Close() })
	defer stop()

	r.logger.WithField("channels", names).Debug("redis pubsub connected")
	received := false
	for msg := range pubSub.Channel() {
		received = true
		r.handleMessage(ctx, msg.Payload)
	}
	return received
}

func (r *redisEventListener) handleMessage(ctx context.Context, payload string) {
	var msg RedisMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		r.logger.WithError(err).Error("error decoding redis message")
		return
	}

	r.mu.RLock()
	handler, ok := r.handlers[msg.Type]
	r.mu.RUnlock()
	if !ok {
		r.logger.WithField("type", msg.Type).Debug("no subscriber registered for event")
		return
	}
	if err := handler(ctx, msg.Event); err != nil {
		r.logger.WithError(err).WithField("type", msg.Type).Error("error executing event subscriber")
	}
}
