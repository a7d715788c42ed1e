package http

import (
	"github.com/NeuralTrust/ClickGuard/pkg/domain/clicklog"
	"github.com/NeuralTrust/ClickGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/ClickGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listClicksHandler struct {
	logger *logrus.Logger
	repo   clicklog.Repository
}

func NewListClicksHandler(logger *logrus.Logger, repo clicklog.Repository) Handler {
	return &listClicksHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary      List recent clicks
// @Description  Most recent scored clicks for the caller's account, newest first
// @Tags         Clicks
// @Param        Authorization header string true "Authorization token"
// @Param        limit query int false "Max items (default 100, max 1000)"
// @Produce      json
// @Success      200 {object} response.ListClicksResponse "Recent clicks"
// @Failure      400 {object} map[string]interface{} "Invalid query"
// @Failure      401 {object} map[string]interface{} "Unauthorized"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/v1/clicks [get]
func (h *listClicksHandler) Handle(c *fiber.Ctx) error {
	account, ok := accountFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrMissingAccount})
	}
	q, err := request.ParseListQuery(c.Query("limit"), "")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := h.repo.ListRecent(c.UserContext(), account, q.Limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list click logs")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list click logs"})
	}
	if entries == nil {
		entries = []*clicklog.Entry{}
	}
	return c.Status(fiber.StatusOK).JSON(response.ListClicksResponse{
		Items: entries,
		Count: len(entries),
		Limit: q.Limit,
	})
}
