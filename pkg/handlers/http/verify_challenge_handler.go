package http

import (
	"github.com/NeuralTrust/ClickGuard/pkg/app/gate"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/NeuralTrust/ClickGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/ClickGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type verifyChallengeHandler struct {
	logger *logrus.Logger
	gate   gate.Gate
}

func NewVerifyChallengeHandler(logger *logrus.Logger, g gate.Gate) Handler {
	return &verifyChallengeHandler{
		logger: logger,
		gate:   g,
	}
}

// Handle @Summary Verify a proof of work solution
// @Description Stateless check of a solution against its signed challenge
// @Tags Tracking
// @Accept json
// @Produce json
// @Param solution body request.VerifyChallengeRequest true "Solution"
// @Success 200 {object} response.VerifyChallengeResponse "Solution valid"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 422 {object} response.VerifyChallengeResponse "Solution rejected"
// @Router /api/v1/challenge/verify [post]
func (h *verifyChallengeHandler) Handle(c *fiber.Ctx) error {
	var req request.VerifyChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ok, reason := h.gate.VerifySolution(req.SessionID, &click.PowSolution{
		Challenge:      req.Solution.Challenge,
		Nonce:          req.Solution.Nonce,
		RequiredPrefix: req.Solution.RequiredPrefix,
		Token:          req.Solution.Token,
	})
	if !ok {
		h.logger.WithFields(logrus.Fields{
			"session_id": req.SessionID,
			"reason":     reason,
		}).Debug("challenge verification failed")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.VerifyChallengeResponse{Reason: reason})
	}
	return c.Status(fiber.StatusOK).JSON(response.VerifyChallengeResponse{Valid: true})
}
