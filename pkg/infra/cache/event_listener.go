package cache

import (
	"context"
	"encoding/json"

	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache/channel"
)

// EventHandler decodes and dispatches one event payload.
type EventHandler func(ctx context.Context, raw json.RawMessage) error

type EventListener interface {
	Listen(ctx context.Context, channels ...channel.Channel)
	Register(eventType string, handler EventHandler)
}
