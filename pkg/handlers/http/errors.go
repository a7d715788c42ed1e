package http

const (
	ErrInvalidJsonPayload = "invalid JSON payload"
	ErrInvalidEncoding    = "unsupported or corrupt content encoding"
	ErrMissingAccount     = "account not found in token"
	ErrInternal           = "internal server error"
)
