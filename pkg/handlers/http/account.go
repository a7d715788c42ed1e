package http

import (
	"github.com/NeuralTrust/ClickGuard/pkg/common"
	"github.com/gofiber/fiber/v2"
)

func accountFromCtx(c *fiber.Ctx) (string, bool) {
	account, ok := c.Locals(common.AccountContextKey).(string)
	return account, ok && account != ""
}
