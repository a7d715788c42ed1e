package http

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/app/gate"
	"github.com/NeuralTrust/ClickGuard/pkg/app/ingest"
	"github.com/NeuralTrust/ClickGuard/pkg/common"
	"github.com/NeuralTrust/ClickGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/ClickGuard/pkg/handlers/http/response"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/fingerprint"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/httpx"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type trackClickHandler struct {
	logger     *logrus.Logger
	pipeline   ingest.Pipeline
	trustProxy bool
	now        func() time.Time
}

func NewTrackClickHandler(logger *logrus.Logger, pipeline ingest.Pipeline, trustProxy bool) Handler {
	return &trackClickHandler{
		logger:     logger,
		pipeline:   pipeline,
		trustProxy: trustProxy,
		now:        time.Now,
	}
}

// Handle @Summary Track a click
// @Description Scores a click reported by the tracker script. Bodies may be gzip or brotli encoded.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param X-Account-Ref header string false "Account the click belongs to"
// @Param click body request.TrackClickRequest true "Click payload"
// @Success 200 {object} response.TrackClickResponse "Click scored"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} response.ChallengeResponse "Proof of work required or rejected"
// @Router /api/v1/track [post]
func (h *trackClickHandler) Handle(c *fiber.Ctx) error {
	// Raw body: fiber's Body() would inflate on its own and we want one code
	// path with a size cap.
	body, _, err := httpx.DecodeBody(c.Get(fiber.HeaderContentEncoding), c.Request().Body())
	if err != nil {
		h.logger.WithError(err).Debug("failed to decode track body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidEncoding})
	}

	var req request.TrackClickRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ip := strings.TrimSpace(c.IP())
	if h.trustProxy {
		ip = fingerprint.ClientIP(c)
	}
	now := h.now()
	raw := req.ToRawClick(request.ClickMeta{
		IP:             ip,
		UserAgent:      c.Get(fiber.HeaderUserAgent),
		AcceptLanguage: c.Get(fiber.HeaderAcceptLanguage),
		AccountRef:     c.Get(common.AccountHeader),
		ReceivedAt:     now,
	})

	res := h.pipeline.Process(c.UserContext(), raw)

	switch res.Gate.Outcome {
	case gate.OutcomeChallenge:
		return c.Status(fiber.StatusForbidden).JSON(response.ChallengeResponse{
			Error:     "proof of work required",
			Reason:    res.Gate.Reason,
			Challenge: res.Gate.Challenge,
		})
	case gate.OutcomeReject:
		return c.Status(fiber.StatusForbidden).JSON(response.ChallengeResponse{
			Error:  "proof of work rejected",
			Reason: res.Gate.Reason,
		})
	}

	if res.Decision == nil {
		h.logger.WithField("session_id", raw.SessionID).Error("pipeline returned no decision")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternal})
	}
	return c.Status(fiber.StatusOK).JSON(response.NewTrackClickResponse(raw.SessionID, ip, res, now))
}
