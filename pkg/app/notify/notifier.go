package notify

import (
	"context"
	"time"

	infraWebsocket "github.com/NeuralTrust/ClickGuard/pkg/infra/websocket"
)

type EventName string

const (
	EventThreatDetected EventName = "threat_detected"
	EventIPBlocked      EventName = "ip_blocked"
	EventSystemAlert    EventName = "system_alert"
	EventClickProcessed EventName = "click_processed"
	EventFraudDetected  EventName = "fraud_detected"
)

// Target selects receivers: every subscriber of Group, plus the subscribers
// authenticated as Identity.
type Target struct {
	Group    string
	Identity string
}

// Notifier pushes best effort notifications. Disconnected subscribers miss
// the event; there is no replay.
//
//go:generate mockery --name=Notifier --dir=. --output=./mocks --filename=notifier_mock.go --case=underscore --with-expecter
type Notifier interface {
	Publish(ctx context.Context, target Target, event EventName, payload map[string]interface{}) error
}

func envelope(event EventName, at time.Time, payload map[string]interface{}) infraWebsocket.Envelope {
	return infraWebsocket.Envelope{
		Type:      string(event),
		Timestamp: at.UTC(),
		Data:      payload,
	}
}
