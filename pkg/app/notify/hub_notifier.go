package notify

import (
	"context"
	"fmt"
	"time"

	infraWebsocket "github.com/NeuralTrust/ClickGuard/pkg/infra/websocket"
	"github.com/sirupsen/logrus"
)

type hubNotifier struct {
	logger *logrus.Logger
	hub    *infraWebsocket.Hub
	now    func() time.Time
}

// NewHubNotifier delivers straight into the local hub. Used when the api and
// the worker share one process.
func NewHubNotifier(logger *logrus.Logger, hub *infraWebsocket.Hub) Notifier {
	return &hubNotifier{logger: logger, hub: hub, now: time.Now}
}

func (n *hubNotifier) Publish(_ context.Context, target Target, event EventName, payload map[string]interface{}) error {
	return deliver(n.logger, n.hub, target, envelope(event, n.now(), payload))
}

func deliver(logger *logrus.Logger, hub *infraWebsocket.Hub, target Target, env infraWebsocket.Envelope) error {
	data, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	delivered := hub.Publish(target.Group, target.Identity, data)
	logger.WithFields(logrus.Fields{
		"event":     env.Type,
		"group":     target.Group,
		"identity":  target.Identity,
		"delivered": delivered,
	}).Debug("notification delivered")
	return nil
}
