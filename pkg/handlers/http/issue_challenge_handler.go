package http

import (
	"github.com/NeuralTrust/ClickGuard/pkg/app/gate"
	"github.com/NeuralTrust/ClickGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type issueChallengeHandler struct {
	logger *logrus.Logger
	gate   gate.Gate
}

func NewIssueChallengeHandler(logger *logrus.Logger, g gate.Gate) Handler {
	return &issueChallengeHandler{
		logger: logger,
		gate:   g,
	}
}

// Handle @Summary Issue a proof of work challenge
// @Description Returns a signed challenge bound to the session
// @Tags Tracking
// @Accept json
// @Produce json
// @Param challenge body request.IssueChallengeRequest true "Session"
// @Success 201 {object} gate.Challenge "Challenge issued"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/challenge [post]
func (h *issueChallengeHandler) Handle(c *fiber.Ctx) error {
	var req request.IssueChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	challenge, err := h.gate.Issue(req.SessionID)
	if err != nil {
		h.logger.WithError(err).Error("failed to issue challenge")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternal})
	}
	return c.Status(fiber.StatusCreated).JSON(challenge)
}
