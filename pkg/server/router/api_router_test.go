package router_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/config"
	handlers "github.com/NeuralTrust/ClickGuard/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/ClickGuard/pkg/handlers/websocket"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/auth/jwt"
	infraWebsocket "github.com/NeuralTrust/ClickGuard/pkg/infra/websocket"
	"github.com/NeuralTrust/ClickGuard/pkg/server/middleware"
	"github.com/NeuralTrust/ClickGuard/pkg/server/router"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedHandler string

func (h namedHandler) Handle(c *fiber.Ctx) error {
	return c.SendString(string(h))
}

type noopWSHandler struct{}

func (noopWSHandler) Handle(*websocket.Conn) {}

func newAPIApp(t *testing.T) (*fiber.App, jwt.Manager) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	manager := jwt.NewJwtManager("router-secret", time.Hour)

	app := fiber.New()
	r := router.NewAPIRouter(router.APIRouterDI{
		Config: &config.Config{Server: config.ServerConfig{Host: "localhost", APIPort: 8080}},
		MiddlewareTransport: middleware.NewTransport(
			middleware.NewTraceMiddleware(),
			middleware.NewPanicRecoverMiddleware(logger),
		),
		AuthMiddleware:      middleware.NewAuthMiddleware(logger, manager),
		WebsocketMiddleware: middleware.NewWebsocketMiddleware(logger, manager, infraWebsocket.NewSemaphore(1)),
		HandlerTransport: &handlers.HandlerTransport{
			TrackClickHandler:      namedHandler("track"),
			IssueChallengeHandler:  namedHandler("issue"),
			VerifyChallengeHandler: namedHandler("verify"),
			ListBlockedHandler:     namedHandler("blocked"),
			UnblockHandler:         namedHandler("unblock"),
			ListClicksHandler:      namedHandler("clicks"),
			HealthHandler:          namedHandler("health"),
			GetVersionHandler:      namedHandler("version"),
		},
		WSHandlerTransport: &wsHandlers.HandlerTransportDTO{NotificationsHandler: noopWSHandler{}},
	})
	require.NoError(t, r.BuildRoutes(app))
	return app, manager
}

func call(t *testing.T, app *fiber.App, method, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestAPIRouter_PublicRoutes(t *testing.T) {
	app, _ := newAPIApp(t)

	routes := map[string][2]string{
		"track":   {fiber.MethodPost, "/api/v1/track"},
		"issue":   {fiber.MethodPost, "/api/v1/challenge"},
		"verify":  {fiber.MethodPost, "/api/v1/challenge/verify"},
		"health":  {fiber.MethodGet, "/health"},
		"version": {fiber.MethodGet, "/api/v1/version"},
	}
	for want, route := range routes {
		status, body := call(t, app, route[0], route[1], "")
		assert.Equal(t, fiber.StatusOK, status, route[1])
		assert.Equal(t, want, body, route[1])
	}
}

func TestAPIRouter_OperatorRoutesRequireToken(t *testing.T) {
	app, manager := newAPIApp(t)
	token, err := manager.CreateToken("acct-1", "ops")
	require.NoError(t, err)

	routes := map[string][2]string{
		"blocked": {fiber.MethodGet, "/api/v1/blocked"},
		"unblock": {fiber.MethodPost, "/api/v1/blocked/unblock"},
		"clicks":  {fiber.MethodGet, "/api/v1/clicks"},
	}
	for want, route := range routes {
		status, _ := call(t, app, route[0], route[1], "")
		assert.Equal(t, fiber.StatusUnauthorized, status, route[1])

		status, body := call(t, app, route[0], route[1], token)
		assert.Equal(t, fiber.StatusOK, status, route[1])
		assert.Equal(t, want, body, route[1])
	}
}

func TestAPIRouter_WebsocketRequiresUpgrade(t *testing.T) {
	app, _ := newAPIApp(t)
	status, _ := call(t, app, fiber.MethodGet, "/ws", "")
	assert.Equal(t, fiber.StatusUpgradeRequired, status)
}

func TestAPIRouter_RejectsIncompleteTransport(t *testing.T) {
	r := router.NewAPIRouter(router.APIRouterDI{
		WSHandlerTransport: &wsHandlers.HandlerTransportDTO{},
	})
	assert.ErrorIs(t, r.BuildRoutes(fiber.New()), router.ErrInvalidHandlerTransport)
}

func TestWorkerRouter(t *testing.T) {
	app := fiber.New()
	require.NoError(t, router.NewWorkerRouter(namedHandler("health"), namedHandler("version")).BuildRoutes(app))

	status, body := call(t, app, fiber.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "health", body)

	assert.ErrorIs(t, router.NewWorkerRouter(nil, nil).BuildRoutes(fiber.New()), router.ErrInvalidHandlerTransport)
}
