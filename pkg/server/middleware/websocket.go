package middleware

import (
	"github.com/NeuralTrust/ClickGuard/pkg/common"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/auth/jwt"
	infraWebsocket "github.com/NeuralTrust/ClickGuard/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type websocketMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
	semaphore  *infraWebsocket.Semaphore
}

// NewWebsocketMiddleware authenticates the upgrade with the token query
// parameter and reserves a connection slot. The handler releases the slot.
func NewWebsocketMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
	semaphore *infraWebsocket.Semaphore,
) Middleware {
	return &websocketMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
		semaphore:  semaphore,
	}
}

func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		claims, err := m.jwtManager.DecodeToken(c.Query(common.TokenQueryParam))
		if err != nil {
			m.logger.WithError(err).Debug("websocket token rejected")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		if !m.semaphore.Acquire() {
			m.logger.Warn("maximum websocket connections reached, rejecting connection")
			return fiber.ErrTooManyRequests
		}
		c.Locals(string(common.SemaphoreContextKey), m.semaphore)
		c.Locals(string(common.AccountContextKey), claims.Account)
		c.Locals(string(common.IdentityContextKey), claims.Subject)
		if err := c.Next(); err != nil {
			m.semaphore.Release()
			return err
		}
		return nil
	}
}
