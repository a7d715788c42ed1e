package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache/channel"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache/event"
	infraWebsocket "github.com/NeuralTrust/ClickGuard/pkg/infra/websocket"
	"github.com/sirupsen/logrus"
)

type redisNotifier struct {
	publisher cache.EventPublisher
	now       func() time.Time
}

// NewRedisNotifier fans notifications out through Redis pub/sub so every api
// instance can relay them to its own websocket subscribers.
func NewRedisNotifier(publisher cache.EventPublisher) Notifier {
	return &redisNotifier{publisher: publisher, now: time.Now}
}

func (n *redisNotifier) Publish(ctx context.Context, target Target, name EventName, payload map[string]interface{}) error {
	ev := event.NotificationEvent{
		Group:     target.Group,
		Identity:  target.Identity,
		Name:      string(name),
		Timestamp: n.now().UTC(),
		Data:      payload,
	}
	if err := n.publisher.Publish(ctx, channel.NotificationsChannel, ev); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// HubRelay receives notifications from Redis and pushes them into the local
// hub.
type HubRelay struct {
	logger *logrus.Logger
	hub    *infraWebsocket.Hub
}

var _ cache.EventSubscriber[event.NotificationEvent] = (*HubRelay)(nil)

func NewHubRelay(logger *logrus.Logger, hub *infraWebsocket.Hub) *HubRelay {
	return &HubRelay{logger: logger, hub: hub}
}

func (r *HubRelay) OnEvent(_ context.Context, ev event.NotificationEvent) error {
	return deliver(r.logger, r.hub, Target{Group: ev.Group, Identity: ev.Identity}, infraWebsocket.Envelope{
		Type:      ev.Name,
		Timestamp: ev.Timestamp,
		Data:      ev.Data,
	})
}
