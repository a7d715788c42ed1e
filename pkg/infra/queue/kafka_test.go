package queue

import (
	"testing"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeMessage(t *testing.T) {
	msg := testMessage("10.20.0.0/16")
	expiresAt := time.Date(2025, 5, 1, 10, 0, 0, 123, time.UTC)

	km, err := encodeMessage("clickguard.actions", msg, 3, expiresAt)
	require.NoError(t, err)
	assert.Equal(t, "clickguard.actions", *km.TopicPartition.Topic)
	assert.Equal(t, []byte("10.20.0.0/16"), km.Key)

	got, attempt, gotExpiry, err := decodeMessage(km)
	require.NoError(t, err)
	assert.Equal(t, msg.ID, got.ID)
	assert.Equal(t, msg.Target, got.Target)
	assert.Equal(t, 3, attempt)
	assert.True(t, expiresAt.Equal(gotExpiry))
}

func TestDecodeMessage_MissingHeaders(t *testing.T) {
	km, err := encodeMessage("t", testMessage("1.2.3.4"), 1, time.Now())
	require.NoError(t, err)
	km.Headers = []kafka.Header{{Key: headerAttempt, Value: []byte("zero")}}

	_, attempt, expiresAt, err := decodeMessage(km)
	require.NoError(t, err)
	assert.Equal(t, 1, attempt)
	assert.True(t, expiresAt.IsZero())
	assert.False(t, expired(expiresAt, time.Now()))
}

func TestDecodeMessage_BadPayload(t *testing.T) {
	_, _, _, err := decodeMessage(&kafka.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, expired(now, now))
	assert.True(t, expired(now.Add(-time.Second), now))
	assert.False(t, expired(now.Add(time.Second), now))
	assert.False(t, expired(time.Time{}, now))
}
