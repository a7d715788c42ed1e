package http

import (
	"errors"

	"github.com/NeuralTrust/ClickGuard/pkg/app/enforcement"
	"github.com/NeuralTrust/ClickGuard/pkg/domain"
	"github.com/NeuralTrust/ClickGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/adplatform"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type unblockHandler struct {
	logger *logrus.Logger
	worker enforcement.Worker
}

func NewUnblockHandler(logger *logrus.Logger, worker enforcement.Worker) Handler {
	return &unblockHandler{
		logger: logger,
		worker: worker,
	}
}

// Handle @Summary Unblock a target
// @Description Lifts a block on the ad platform and marks the entry inactive. Unblocking an inactive entry is a no-op.
// @Tags Blocked
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param unblock body request.UnblockRequest true "Target to unblock"
// @Success 200 {object} blocked.Entry "Entry after unblock"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "No block for target"
// @Failure 502 {object} map[string]interface{} "Ad platform error"
// @Router /api/v1/blocked/unblock [post]
func (h *unblockHandler) Handle(c *fiber.Ctx) error {
	account, ok := accountFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrMissingAccount})
	}
	var req request.UnblockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry, err := h.worker.Unblock(c.UserContext(), account, req.Target, req.ScopeValue())
	if err != nil {
		fields := logrus.Fields{"target": req.Target, "scope": req.Scope}
		switch {
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, adplatform.ErrRejected), errors.Is(err, adplatform.ErrUnavailable):
			h.logger.WithError(err).WithFields(fields).Warn("ad platform refused unblock")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		default:
			h.logger.WithError(err).WithFields(fields).Error("failed to unblock target")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternal})
		}
	}
	return c.Status(fiber.StatusOK).JSON(entry)
}
