package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/config"
	"github.com/NeuralTrust/ClickGuard/pkg/dependency_container"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache/channel"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/ClickGuard/pkg/infra/logger"
	_ "github.com/NeuralTrust/ClickGuard/pkg/infra/migrations"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ClickGuard/pkg/server"
	"github.com/NeuralTrust/ClickGuard/pkg/server/middleware"
	"github.com/NeuralTrust/ClickGuard/pkg/server/router"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

func main() {
	role := getServerType()
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	if err := config.Load("./config"); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()
	if err := cfg.Validate(role); err != nil {
		log.Fatalf("invalid configuration for role %s: %v", role, err)
	}

	logger, err := infraLogger.NewLogger(role, cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Close()

	if cfg.Metrics.Enabled {
		prometheus.Initialize(prometheus.MetricsConfig{EnableProcess: cfg.Metrics.EnableProcess})
	}

	db, err := database.NewDB(logger.Logger, &cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger.Logger,
		DB:     db,
		Role:   role,
	})
	if err != nil {
		logger.Fatalf("failed to initialize container: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, err := initializeServer(role, cfg, container)
	if err != nil {
		logger.Fatalf("failed to initialize server: %v", err)
	}

	container.Start(ctx)
	if container.RedisListener != nil {
		go container.RedisListener.Listen(ctx, channel.NotificationsChannel)
	}
	if container.ClickLogWriter != nil {
		container.ClickLogWriter.Start()
	}

	workerDone := make(chan struct{})
	if len(container.Consumers) > 0 {
		go func() {
			defer close(workerDone)
			if err := container.Worker.Run(ctx, container.Consumers...); err != nil && !errors.Is(err, context.Canceled) {
				logger.WithError(err).Error("enforcement worker stopped")
			}
		}()
	} else {
		close(workerDone)
	}

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
	}
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		logger.Warn("enforcement worker did not stop in time")
	}
	if container.ClickLogWriter != nil {
		if err := container.ClickLogWriter.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("click log writer did not drain")
		}
	}
	if err := container.Close(); err != nil {
		logger.WithError(err).Error("error releasing resources")
	}
	logger.Info("server gracefully stopped")
}

func getServerType() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return config.RoleStandalone
}

func initializeServer(role string, cfg *config.Config, c *dependency_container.Container) (server.Server, error) {
	switch role {
	case config.RoleAPI, config.RoleStandalone:
		return server.NewAPIServer(server.APIServerDI{
			Config: cfg,
			Logger: c.Logger,
			Routers: []router.ServerRouter{
				router.NewAPIRouter(router.APIRouterDI{
					Config:              cfg,
					MiddlewareTransport: middleware.NewTransport(c.TraceMiddleware, c.PanicMiddleware),
					AuthMiddleware:      c.AuthMiddleware,
					WebsocketMiddleware: c.WebsocketMiddleware,
					HandlerTransport:    c.HandlerTransport,
					WSHandlerTransport:  c.WSHandlerTransport,
				}),
			},
		})
	case config.RoleWorker:
		return server.NewWorkerServer(server.WorkerServerDI{
			Config:  cfg,
			Logger:  c.Logger,
			Routers: []router.ServerRouter{router.NewWorkerRouter(c.HealthHandler, c.GetVersionHandler)},
		})
	default:
		return nil, fmt.Errorf("unknown role %q, expected api, worker or standalone", role)
	}
}
