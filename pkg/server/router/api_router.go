package router

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/common"
	"github.com/NeuralTrust/ClickGuard/pkg/config"
	handlers "github.com/NeuralTrust/ClickGuard/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/ClickGuard/pkg/handlers/websocket"
	"github.com/NeuralTrust/ClickGuard/pkg/server/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	HealthPath  = "/health"
	VersionPath = "/api/v1/version"
	SwaggerPath = "/swagger.json"
	DocsPath    = "/docs/*"
)

type APIRouterDI struct {
	Config              *config.Config
	MiddlewareTransport *middleware.Transport
	AuthMiddleware      middleware.Middleware
	WebsocketMiddleware middleware.Middleware
	HandlerTransport    *handlers.HandlerTransport
	WSHandlerTransport  wsHandlers.HandlerTransport
}

type apiRouter struct {
	di APIRouterDI
}

func NewAPIRouter(di APIRouterDI) ServerRouter {
	return &apiRouter{di: di}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	handlerTransport := r.di.HandlerTransport
	if handlerTransport == nil {
		return ErrInvalidHandlerTransport
	}
	wsHandlerTransport, ok := r.di.WSHandlerTransport.GetTransport().(*wsHandlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	if r.di.MiddlewareTransport != nil && len(r.di.MiddlewareTransport.Middlewares) > 0 {
		router.Use(r.di.MiddlewareTransport.GetMiddlewares()...)
	}

	router.Get(HealthPath, handlerTransport.HealthHandler.Handle)
	router.Get(VersionPath, handlerTransport.GetVersionHandler.Handle)

	router.Static(SwaggerPath, "./docs/swagger.json")
	router.Get(DocsPath, swagger.New(swagger.Config{
		URL: fmt.Sprintf("http://%s:%d%s", r.di.Config.Server.Host, r.di.Config.Server.APIPort, SwaggerPath),
	}))

	v1 := router.Group("/api/v1")
	{
		// public tracking surface, called by the page beacon
		v1.Post("/track", handlerTransport.TrackClickHandler.Handle)
		v1.Post("/challenge", handlerTransport.IssueChallengeHandler.Handle)
		v1.Post("/challenge/verify", handlerTransport.VerifyChallengeHandler.Handle)

		auth := r.di.AuthMiddleware.Middleware()
		v1.Get("/blocked", auth, handlerTransport.ListBlockedHandler.Handle)
		v1.Post("/blocked/unblock", auth, handlerTransport.UnblockHandler.Handle)
		v1.Get("/clicks", auth, handlerTransport.ListClicksHandler.Handle)
	}

	router.Get(common.WebsocketPath,
		r.di.WebsocketMiddleware.Middleware(),
		websocket.New(
			wsHandlerTransport.NotificationsHandler.Handle,
			websocket.Config{
				HandshakeTimeout: 15 * time.Second,
				ReadBufferSize:   1024,
				WriteBufferSize:  1024,
			},
		),
	)
	return nil
}
