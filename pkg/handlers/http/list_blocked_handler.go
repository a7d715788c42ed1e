package http

import (
	"github.com/NeuralTrust/ClickGuard/pkg/domain/blocked"
	"github.com/NeuralTrust/ClickGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/ClickGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listBlockedHandler struct {
	logger *logrus.Logger
	repo   blocked.Repository
}

func NewListBlockedHandler(logger *logrus.Logger, repo blocked.Repository) Handler {
	return &listBlockedHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary      List active blocks
// @Description  Lists the targets currently blocked for the caller's account
// @Tags         Blocked
// @Param        Authorization header string true "Authorization token"
// @Param        limit query int false "Max items (default 100, max 1000)"
// @Param        since query string false "Only blocks seen after this RFC3339 time"
// @Produce      json
// @Success      200 {object} response.ListBlockedResponse "Active blocks"
// @Failure      400 {object} map[string]interface{} "Invalid query"
// @Failure      401 {object} map[string]interface{} "Unauthorized"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/v1/blocked [get]
func (h *listBlockedHandler) Handle(c *fiber.Ctx) error {
	account, ok := accountFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrMissingAccount})
	}
	q, err := request.ParseListQuery(c.Query("limit"), c.Query("since"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := h.repo.ListActive(c.UserContext(), account, q.Since, q.Limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list blocked entries")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list blocked entries"})
	}
	if entries == nil {
		entries = []*blocked.Entry{}
	}
	return c.Status(fiber.StatusOK).JSON(response.ListBlockedResponse{
		Items: entries,
		Count: len(entries),
		Limit: q.Limit,
	})
}
