package router

import (
	handlers "github.com/NeuralTrust/ClickGuard/pkg/handlers/http"
	"github.com/gofiber/fiber/v2"
)

type workerRouter struct {
	healthHandler  handlers.Handler
	versionHandler handlers.Handler
}

func NewWorkerRouter(healthHandler, versionHandler handlers.Handler) ServerRouter {
	return &workerRouter{
		healthHandler:  healthHandler,
		versionHandler: versionHandler,
	}
}

func (r *workerRouter) BuildRoutes(router *fiber.App) error {
	if r.healthHandler == nil || r.versionHandler == nil {
		return ErrInvalidHandlerTransport
	}
	router.Get(HealthPath, r.healthHandler.Handle)
	router.Get(VersionPath, r.versionHandler.Handle)
	return nil
}
