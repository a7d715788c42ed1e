package queue

import (
	"context"
	"sync"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/action"
	"github.com/sirupsen/logrus"
)

type envelope struct {
	msg       action.Message
	attempt   int
	expiresAt time.Time
}

// Memory is an in-process queue with the same settle semantics as the Kafka
// driver. It is both a Publisher and a Consumer and may be consumed from
// several goroutines.
type Memory struct {
	logger *logrus.Logger
	ch     chan envelope
	ttl    time.Duration
	now    func() time.Time

	closeOnce sync.Once
	done      chan struct{}
}

func NewMemory(logger *logrus.Logger, cfg Config) *Memory {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Memory{
		logger: logger,
		ch:     make(chan envelope, cfg.BufferSize),
		ttl:    cfg.TTL,
		now:    time.Now,
		done:   make(chan struct{}),
	}
}

func (m *Memory) Publish(ctx context.Context, msg action.Message) error {
	return m.push(ctx, envelope{msg: msg, attempt: 1, expiresAt: m.now().Add(m.ttl)})
}

func (m *Memory) push(ctx context.Context, env envelope) error {
	select {
	case <-m.done:
		return ErrClosed
	default:
	}
	select {
	case m.ch <- env:
		return nil
	case <-m.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Memory) Consume(ctx context.Context, handler Handler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-m.done:
			return nil
		case env := <-m.ch:
			if expired(env.expiresAt, m.now()) {
				m.logger.WithFields(logrus.Fields{
					"action_id": env.msg.ID,
					"target":    env.msg.Target,
				}).Warn("dropping expired action message")
				continue
			}
			if err := dispatch(ctx, handler, m.delivery(env)); err != nil {
				m.logger.WithError(err).Error("failed to requeue action message")
			}
		}
	}
}

func (m *Memory) delivery(env envelope) *Delivery {
	ack := func() error { return nil }
	nack := func(requeue bool) error {
		if !requeue {
			return nil
		}
		next := env
		next.attempt++
		// pushed asynchronously so a full buffer cannot stall the consumer
		go func() {
			_ = m.push(context.Background(), next)
		}()
		return nil
	}
	return NewDelivery(env.msg, env.attempt, env.expiresAt, ack, nack)
}

// Len reports the number of queued messages.
func (m *Memory) Len() int {
	return len(m.ch)
}

func (m *Memory) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return nil
}
