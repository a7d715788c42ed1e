package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/action"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/sirupsen/logrus"
)

const DefaultPollTimeout = 500 * time.Millisecond

type KafkaConfig struct {
	Brokers     string        `mapstructure:"brokers"`
	Topic       string        `mapstructure:"topic"`
	GroupID     string        `mapstructure:"group_id"`
	PollTimeout time.Duration `mapstructure:"poll_timeout"`
}

type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
	ttl      time.Duration
	now      func() time.Time
}

func NewKafkaPublisher(cfg Config) (*KafkaPublisher, error) {
	if cfg.Kafka.Topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Kafka.Brokers,
		"acks":              "all",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &KafkaPublisher{producer: producer, topic: cfg.Kafka.Topic, ttl: ttl, now: time.Now}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg action.Message) error {
	km, err := encodeMessage(p.topic, msg, 1, p.now().Add(p.ttl))
	if err != nil {
		return err
	}
	return produce(ctx, p.producer, km)
}

func (p *KafkaPublisher) Close() error {
	p.producer.Flush(5000)
	p.producer.Close()
	return nil
}

// produce waits for the delivery report before returning.
func produce(ctx context.Context, producer *kafka.Producer, km *kafka.Message) error {
	deliveryChan := make(chan kafka.Event, 1)
	if err := producer.Produce(km, deliveryChan); err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event: %v", e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("delivery failed: %w", m.TopicPartition.Error)
		}
		return nil
	}
}

// KafkaConsumer commits offsets manually. Nack with requeue produces the
// message again with a bumped attempt header before committing the original.
// One KafkaConsumer should be driven by one goroutine.
type KafkaConsumer struct {
	logger      *logrus.Logger
	consumer    *kafka.Consumer
	producer    *kafka.Producer
	topic       string
	pollTimeout time.Duration
	now         func() time.Time
}

func NewKafkaConsumer(logger *logrus.Logger, cfg Config) (*KafkaConsumer, error) {
	if cfg.Kafka.Topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "clickguard-enforcement"
	}
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.Kafka.Brokers,
		"group.id":           cfg.Kafka.GroupID,
		"enable.auto.commit": false,
		"auto.offset.reset":  "earliest",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}
	if err := consumer.SubscribeTopics([]string{cfg.Kafka.Topic}, nil); err != nil {
		_ = consumer.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", cfg.Kafka.Topic, err)
	}
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Kafka.Brokers,
		"acks":              "all",
	})
	if err != nil {
		_ = consumer.Close()
		return nil, fmt.Errorf("failed to create kafka requeue producer: %w", err)
	}
	pollTimeout := cfg.Kafka.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = DefaultPollTimeout
	}
	return &KafkaConsumer{
		logger:      logger,
		consumer:    consumer,
		producer:    producer,
		topic:       cfg.Kafka.Topic,
		pollTimeout: pollTimeout,
		now:         time.Now,
	}, nil
}

func (c *KafkaConsumer) Consume(ctx context.Context, handler Handler) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		km, err := c.consumer.ReadMessage(c.pollTimeout)
		if err != nil {
			var kErr kafka.Error
			if errors.As(err, &kErr) && kErr.Code() == kafka.ErrTimedOut {
				continue
			}
			if errors.As(err, &kErr) && kErr.IsFatal() {
				return fmt.Errorf("kafka consumer failed: %w", err)
			}
			c.logger.WithError(err).Warn("kafka read failed")
			continue
		}

		msg, attempt, expiresAt, err := decodeMessage(km)
		if err != nil {
			c.logger.WithError(err).Error("dropping undecodable action message")
			c.commit(km)
			continue
		}
		if expired(expiresAt, c.now()) {
			c.logger.WithFields(logrus.Fields{
				"action_id": msg.ID,
				"target":    msg.Target,
			}).Warn("dropping expired action message")
			c.commit(km)
			continue
		}

		ack := func() error {
			_, err := c.consumer.CommitMessage(km)
			return err
		}
		nack := func(requeue bool) error {
			if requeue {
				next, err := encodeMessage(c.topic, msg, attempt+1, expiresAt)
				if err != nil {
					return err
				}
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := produce(ctx, c.producer, next); err != nil {
					return err
				}
			}
			_, err := c.consumer.CommitMessage(km)
			return err
		}
		d := NewDelivery(msg, attempt, expiresAt, ack, nack)
		if err := dispatch(ctx, handler, d); err != nil {
			c.logger.WithError(err).Error("failed to requeue action message")
		}
	}
}

func (c *KafkaConsumer) commit(km *kafka.Message) {
	if _, err := c.consumer.CommitMessage(km); err != nil {
		c.logger.WithError(err).Warn("failed to commit offset")
	}
}

func (c *KafkaConsumer) Close() error {
	c.producer.Flush(5000)
	c.producer.Close()
	return c.consumer.Close()
}

func encodeMessage(topic string, msg action.Message, attempt int, expiresAt time.Time) (*kafka.Message, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal action message: %w", err)
	}
	return &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(msg.Target),
		Value:          data,
		Headers: []kafka.Header{
			{Key: headerAttempt, Value: []byte(strconv.Itoa(attempt))},
			{Key: headerExpiresAt, Value: []byte(expiresAt.UTC().Format(time.RFC3339Nano))},
		},
	}, nil
}

func decodeMessage(km *kafka.Message) (action.Message, int, time.Time, error) {
	var msg action.Message
	if err := json.Unmarshal(km.Value, &msg); err != nil {
		return msg, 0, time.Time{}, fmt.Errorf("failed to unmarshal action message: %w", err)
	}
	attempt := 1
	var expiresAt time.Time
	for _, h := range km.Headers {
		switch h.Key {
		case headerAttempt:
			if n, err := strconv.Atoi(string(h.Value)); err == nil && n > 0 {
				attempt = n
			}
		case headerExpiresAt:
			if t, err := time.Parse(time.RFC3339Nano, string(h.Value)); err == nil {
				expiresAt = t
			}
		}
	}
	return msg, attempt, expiresAt, nil
}
