package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache/channel"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache/event"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache/mocks"
	infraWebsocket "github.com/NeuralTrust/ClickGuard/pkg/infra/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func readEnvelope(t *testing.T, s *infraWebsocket.Subscriber) infraWebsocket.Envelope {
	t.Helper()
	select {
	case data := <-s.Messages():
		var env infraWebsocket.Envelope
		require.NoError(t, json.Unmarshal(data, &env))
		return env
	case <-time.After(time.Second):
		t.Fatal("no frame delivered")
	}
	return infraWebsocket.Envelope{}
}

func TestHubNotifier_Publish(t *testing.T) {
	hub := infraWebsocket.NewHub(logrus.New(), 4)
	sub := hub.Subscribe("acc-1", "user-1")
	other := hub.Subscribe("acc-2", "user-2")

	n := NewHubNotifier(logrus.New(), hub)
	err := n.Publish(context.Background(), Target{Group: "acc-1"}, EventIPBlocked, map[string]interface{}{"target": "1.2.3.4"})
	require.NoError(t, err)

	env := readEnvelope(t, sub)
	assert.Equal(t, "ip_blocked", env.Type)
	assert.Equal(t, "1.2.3.4", env.Data["target"])
	assert.False(t, env.Timestamp.IsZero())
	assert.Len(t, other.Messages(), 0)
}

func TestRedisNotifier_Publish(t *testing.T) {
	publisher := mocks.NewEventPublisher(t)
	publisher.EXPECT().
		Publish(mock.Anything, channel.NotificationsChannel, mock.MatchedBy(func(ev event.Event) bool {
			ne, ok := ev.(event.NotificationEvent)
			return ok && ne.Group == "acc-1" && ne.Identity == "u" && ne.Name == "system_alert" && ne.Data["error"] == "boom"
		})).
		Return(nil)

	err := NewRedisNotifier(publisher).Publish(context.Background(), Target{Group: "acc-1", Identity: "u"}, EventSystemAlert, map[string]interface{}{"error": "boom"})
	assert.NoError(t, err)
}

func TestRedisNotifier_PublishError(t *testing.T) {
	publisher := mocks.NewEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	err := NewRedisNotifier(publisher).Publish(context.Background(), Target{Group: "acc-1"}, EventSystemAlert, nil)
	assert.ErrorContains(t, err, "redis down")
}

func TestHubRelay_OnEvent(t *testing.T) {
	hub := infraWebsocket.NewHub(logrus.New(), 4)
	sub := hub.Subscribe("", "user-9")
	relay := NewHubRelay(logrus.New(), hub)

	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, relay.OnEvent(context.Background(), event.NotificationEvent{
		Identity:  "user-9",
		Name:      string(EventFraudDetected),
		Timestamp: ts,
		Data:      map[string]interface{}{"reason": "FRAUD_CIDR_RANGE"},
	}))

	env := readEnvelope(t, sub)
	assert.Equal(t, "fraud_detected", env.Type)
	assert.True(t, ts.Equal(env.Timestamp))
	assert.Equal(t, "FRAUD_CIDR_RANGE", env.Data["reason"])
}
