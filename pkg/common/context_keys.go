package common

type contextKey string

const (
	TraceIdKey          contextKey = "trace_id"
	AccountContextKey   contextKey = "account_ref"
	IdentityContextKey  contextKey = "identity"
	ClientIPContextKey  contextKey = "client_ip"
	SemaphoreContextKey contextKey = "ws_semaphore"
	LatencyContextKey   contextKey = "__execution_time"
)
