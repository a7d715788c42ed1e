package websocket

import (
	"encoding/json"
	"time"
)

// Envelope is the frame pushed to websocket subscribers.
type Envelope struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func (e Envelope) Marshal() ([]byte, error) {
	if e.Data == nil {
		e.Data = map[string]interface{}{}
	}
	return json.Marshal(e)
}
