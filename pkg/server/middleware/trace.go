package middleware

import (
	"context"

	"github.com/NeuralTrust/ClickGuard/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type traceMiddleware struct{}

// NewTraceMiddleware propagates X-Trace-Id, generating one when absent.
func NewTraceMiddleware() Middleware {
	return &traceMiddleware{}
}

func (m *traceMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(common.TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set(common.TraceIDHeader, traceID)
		c.Locals(common.TraceIdKey, traceID)
		c.SetUserContext(context.WithValue(c.UserContext(), common.TraceIdKey, traceID))
		return c.Next()
	}
}
