package event

import "time"

// NotificationEvent relays a live notification between instances. Group and
// Identity select the receivers; either may be empty.
type NotificationEvent struct {
	Group     string                 `json:"group,omitempty"`
	Identity  string                 `json:"identity,omitempty"`
	Name      string                 `json:"name"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func (e NotificationEvent) Type() string {
	return NotificationEventType
}
