package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/action"
)

const (
	DriverKafka  = "kafka"
	DriverMemory = "memory"

	DefaultTTL        = time.Hour
	DefaultBufferSize = 1024

	headerAttempt   = "attempt"
	headerExpiresAt = "expires-at"
)

var (
	ErrClosed         = errors.New("queue closed")
	ErrAlreadySettled = errors.New("delivery already settled")
)

type Config struct {
	Driver     string        `mapstructure:"driver"`
	TTL        time.Duration `mapstructure:"ttl"`
	BufferSize int           `mapstructure:"buffer_size"`
	Kafka      KafkaConfig   `mapstructure:"kafka"`
}

// Handler processes one delivery. A delivery left unsettled when the handler
// returns an error is requeued.
type Handler func(ctx context.Context, d *Delivery) error

//go:generate mockery --name=Publisher --dir=. --output=./mocks --filename=publisher_mock.go --case=underscore --with-expecter
type Publisher interface {
	Publish(ctx context.Context, msg action.Message) error
	Close() error
}

// Consumer pulls deliveries until ctx is cancelled. Cancellation stops new
// pulls; the delivery being handled runs to completion.
type Consumer interface {
	Consume(ctx context.Context, handler Handler) error
	Close() error
}

type Delivery struct {
	Message   action.Message
	Attempt   int
	ExpiresAt time.Time

	mu      sync.Mutex
	settled bool
	ack     func() error
	nack    func(requeue bool) error
}

// NewDelivery wraps msg with the driver's settle callbacks.
func NewDelivery(msg action.Message, attempt int, expiresAt time.Time, ack func() error, nack func(requeue bool) error) *Delivery {
	return &Delivery{
		Message:   msg,
		Attempt:   attempt,
		ExpiresAt: expiresAt,
		ack:       ack,
		nack:      nack,
	}
}

func (d *Delivery) Ack() error {
	return d.settle(func() error { return d.ack() })
}

func (d *Delivery) Nack(requeue bool) error {
	return d.settle(func() error { return d.nack(requeue) })
}

func (d *Delivery) Settled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

func (d *Delivery) settle(fn func() error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.settled {
		return ErrAlreadySettled
	}
	d.settled = true
	return fn()
}

func expired(expiresAt, now time.Time) bool {
	return !expiresAt.IsZero() && !now.Before(expiresAt)
}

func dispatch(ctx context.Context, handler Handler, d *Delivery) error {
	err := handler(ctx, d)
	if err != nil && !d.Settled() {
		return d.Nack(true)
	}
	return nil
}
