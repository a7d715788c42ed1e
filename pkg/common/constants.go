package common

const (
	TraceIDHeader   = "X-Trace-Id"
	AccountHeader   = "X-Account-Ref"
	WebsocketPath   = "/ws"
	TokenQueryParam = "token"

	DefaultListLimit = 100
	MaxListLimit     = 1000
)
