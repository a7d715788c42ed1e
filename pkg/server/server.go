package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/config"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ClickGuard/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const MetricsPath = "/metrics"

// Server interface defines the common behavior for all servers
type Server interface {
	Run() error
	Shutdown() error
}

type BaseServer struct {
	Config *config.Config
	Logger *logrus.Logger
	Router *fiber.App

	metricsOnce sync.Once
	metricsApp  *fiber.App
}

func NewBaseServer(config *config.Config, logger *logrus.Logger) *BaseServer {
	r := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReduceMemoryUsage:     true,
		Network:               fiber.NetworkTCP,
		BodyLimit:             1 * 1024 * 1024,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		IdleTimeout:           120 * time.Second,
		Concurrency:           16384,
	})

	r.Server().ReadBufferSize = 8192
	r.Server().WriteBufferSize = 8192
	r.Server().NoDefaultServerHeader = true

	return &BaseServer{
		Config: config,
		Logger: logger,
		Router: r,
	}
}

func (s *BaseServer) WithRouters(routers ...router.ServerRouter) error {
	for _, r := range routers {
		if err := r.BuildRoutes(s.Router); err != nil {
			return fmt.Errorf("failed to build routes: %w", err)
		}
	}
	return nil
}

// setupMetricsEndpoint serves the process registry on its own port.
func (s *BaseServer) setupMetricsEndpoint() {
	if !s.Config.Metrics.Enabled {
		s.Logger.Info("prometheus metrics are disabled by configuration")
		return
	}
	s.metricsOnce.Do(func() {
		s.metricsApp = fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})
		s.metricsApp.Use(recover.New())

		handler := fasthttpadaptor.NewFastHTTPHandler(
			promhttp.HandlerFor(prometheus.Registry(), promhttp.HandlerOpts{}),
		)
		s.metricsApp.Get(MetricsPath, func(c *fiber.Ctx) error {
			handler(c.Context())
			return nil
		})

		go func() {
			addr := fmt.Sprintf(":%d", s.Config.Server.MetricsPort)
			if err := s.metricsApp.Listen(addr); err != nil {
				if !strings.Contains(err.Error(), "address already in use") {
					s.Logger.WithError(err).Error("failed to start metrics server")
				}
			}
		}()
	})
}

func (s *BaseServer) listen(name string, port int) error {
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf(":%d", port)
	s.Logger.WithField("addr", addr).Infof("starting %s server", name)
	return s.Router.Listen(addr)
}

func (s *BaseServer) Shutdown() error {
	var errs []error
	if err := s.Router.Shutdown(); err != nil {
		errs = append(errs, err)
	}
	if s.metricsApp != nil {
		if err := s.metricsApp.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
