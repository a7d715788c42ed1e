package dependency_container

import (
	"context"
	"errors"
	"fmt"

	appClicklog "github.com/NeuralTrust/ClickGuard/pkg/app/clicklog"
	appDecision "github.com/NeuralTrust/ClickGuard/pkg/app/decision"
	"github.com/NeuralTrust/ClickGuard/pkg/app/enforcement"
	"github.com/NeuralTrust/ClickGuard/pkg/app/enrichment"
	"github.com/NeuralTrust/ClickGuard/pkg/app/gate"
	"github.com/NeuralTrust/ClickGuard/pkg/app/ingest"
	"github.com/NeuralTrust/ClickGuard/pkg/app/notify"
	"github.com/NeuralTrust/ClickGuard/pkg/config"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/blocked"
	domainClicklog "github.com/NeuralTrust/ClickGuard/pkg/domain/clicklog"
	handlers "github.com/NeuralTrust/ClickGuard/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/ClickGuard/pkg/handlers/websocket"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/adplatform"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache/event"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/counter"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/database"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/queue"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/repository"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/reputation"
	infraWebsocket "github.com/NeuralTrust/ClickGuard/pkg/infra/websocket"
	"github.com/NeuralTrust/ClickGuard/pkg/server/middleware"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Logger              *logrus.Logger
	Cache               cache.Client
	BlockedRepository   blocked.Repository
	ClickLogRepository  domainClicklog.Repository
	Hub                 *infraWebsocket.Hub
	Notifier            notify.Notifier
	RedisListener       cache.EventListener
	Publisher           queue.Publisher
	Consumers           []queue.Consumer
	ClickLogWriter      appClicklog.Writer
	Worker              enforcement.Worker
	Gate                gate.Gate
	Pipeline            ingest.Pipeline
	JWTManager          jwt.Manager
	HealthHandler       handlers.Handler
	GetVersionHandler   handlers.Handler
	HandlerTransport    *handlers.HandlerTransport
	WSHandlerTransport  *wsHandlers.HandlerTransportDTO
	TraceMiddleware     middleware.Middleware
	PanicMiddleware     middleware.Middleware
	AuthMiddleware      middleware.Middleware
	WebsocketMiddleware middleware.Middleware

	closers  []func() error
	janitors []func(ctx context.Context)
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
	Role   string
}

func servesAPI(role string) bool {
	return role == config.RoleAPI || role == config.RoleStandalone
}

func servesWorker(role string) bool {
	return role == config.RoleWorker || role == config.RoleStandalone
}

// NewContainer wires everything the role needs. Components a role does not
// run are left nil.
func NewContainer(di ContainerDI) (_ *Container, err error) {
	c := &Container{Logger: di.Logger}
	defer func() {
		if err != nil {
			_ = c.Close()
		}
	}()
	cfg, logger := di.Cfg, di.Logger

	cacheInstance, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	c.Cache = cacheInstance
	c.closers = append(c.closers, cacheInstance.Close)

	// repository
	c.BlockedRepository = repository.NewBlockedEntryRepository(di.DB.DB)
	c.ClickLogRepository = repository.NewClickLogRepository(di.DB.DB)

	// notifications
	redisPublisher := cache.NewRedisEventPublisher(cacheInstance)
	if servesAPI(di.Role) {
		c.Hub = infraWebsocket.NewHub(logger, cfg.Websocket.BufferSize)
	}
	switch {
	case c.Hub != nil && !cfg.Websocket.Relay:
		c.Notifier = notify.NewHubNotifier(logger, c.Hub)
	default:
		c.Notifier = notify.NewRedisNotifier(redisPublisher)
	}
	if c.Hub != nil && cfg.Websocket.Relay {
		c.RedisListener = cache.NewRedisEventListener(logger, cacheInstance)
		cache.RegisterEventSubscriber[event.NotificationEvent](c.RedisListener, notify.NewHubRelay(logger, c.Hub))
	}

	// queue
	if err := c.buildQueue(di); err != nil {
		return nil, err
	}

	// enforcement
	adHTTPClient := httpx.NewFastHTTPClient(httpx.WithTimeout(cfg.AdPlatform.Timeout))
	adBreaker := httpx.NewCircuitBreaker("adplatform", cfg.AdPlatform.BreakerTimeout, cfg.AdPlatform.MaxFailures, logger)
	adClient := adplatform.NewRESTClient(logger, cfg.AdPlatform, adHTTPClient, adBreaker)
	c.Worker = enforcement.NewWorker(logger, c.BlockedRepository, adClient, c.Notifier, cfg.Enforcement)

	redisClient := cacheInstance.RedisClient()
	c.HealthHandler = handlers.NewHealthHandler(logger, map[string]handlers.HealthCheck{
		"postgres": di.DB.Ping,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})
	c.GetVersionHandler = handlers.NewGetVersionHandler(logger)

	if servesAPI(di.Role) {
		if err := c.buildAPI(di); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Container) buildQueue(di ContainerDI) error {
	cfg, logger := di.Cfg, di.Logger
	if cfg.Queue.Driver == queue.DriverMemory {
		q := queue.NewMemory(logger, cfg.Queue)
		c.closers = append(c.closers, q.Close)
		c.Publisher = q
		if servesWorker(di.Role) {
			for i := 0; i < workerConcurrency(cfg); i++ {
				c.Consumers = append(c.Consumers, q)
			}
		}
		return nil
	}

	if servesAPI(di.Role) {
		pub, err := queue.NewKafkaPublisher(cfg.Queue)
		if err != nil {
			return fmt.Errorf("failed to initialize queue publisher: %w", err)
		}
		c.closers = append(c.closers, pub.Close)
		c.Publisher = pub
	}
	if servesWorker(di.Role) {
		// one kafka consumer per goroutine; a consumer handle is not shared
		for i := 0; i < workerConcurrency(cfg); i++ {
			consumer, err := queue.NewKafkaConsumer(logger, cfg.Queue)
			if err != nil {
				return fmt.Errorf("failed to initialize queue consumer: %w", err)
			}
			c.closers = append(c.closers, consumer.Close)
			c.Consumers = append(c.Consumers, consumer)
		}
	}
	return nil
}

func workerConcurrency(cfg *config.Config) int {
	if cfg.Enforcement.Concurrency <= 0 {
		return 1
	}
	return cfg.Enforcement.Concurrency
}

func (c *Container) buildAPI(di ContainerDI) error {
	cfg, logger := di.Cfg, di.Logger

	provider, err := c.buildReputation(cfg, logger)
	if err != nil {
		return err
	}

	if j, ok := provider.(reputation.Janitor); ok {
		c.janitors = append(c.janitors, func(ctx context.Context) {
			j.RunJanitor(ctx, cfg.Reputation.CacheTTL)
		})
	}

	var store counter.Store
	if cfg.Queue.Driver == queue.DriverMemory {
		mem := counter.NewMemoryStore()
		window := cfg.Rules.Window
		if window <= 0 {
			window = appDecision.DefaultWindow
		}
		c.janitors = append(c.janitors, func(ctx context.Context) {
			mem.RunJanitor(ctx, window, window)
		})
		store = mem
	} else {
		store = counter.NewRedisStore(c.Cache.RedisClient(), nil)
	}

	c.Gate = gate.NewGate(logger, cfg.Gate)
	enricher := enrichment.NewEnricher(logger, provider, cfg.Reputation.Timeout)
	engine := appDecision.NewEngine(logger, store, cfg.Rules)

	c.ClickLogWriter = appClicklog.NewWriter(logger, c.ClickLogRepository, cfg.ClickLog)
	c.Pipeline = ingest.NewPipeline(logger, c.Gate, enricher, engine, c.Publisher, c.ClickLogWriter, c.Notifier, cfg.Ingest)

	c.JWTManager = jwt.NewJwtManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	// middleware
	c.TraceMiddleware = middleware.NewTraceMiddleware()
	c.PanicMiddleware = middleware.NewPanicRecoverMiddleware(logger)
	c.AuthMiddleware = middleware.NewAuthMiddleware(logger, c.JWTManager)
	c.WebsocketMiddleware = middleware.NewWebsocketMiddleware(
		logger,
		c.JWTManager,
		infraWebsocket.NewSemaphore(cfg.Websocket.MaxConnections),
	)

	c.HandlerTransport = &handlers.HandlerTransport{
		TrackClickHandler:      handlers.NewTrackClickHandler(logger, c.Pipeline, cfg.Server.TrustProxy),
		IssueChallengeHandler:  handlers.NewIssueChallengeHandler(logger, c.Gate),
		VerifyChallengeHandler: handlers.NewVerifyChallengeHandler(logger, c.Gate),
		ListBlockedHandler:     handlers.NewListBlockedHandler(logger, c.BlockedRepository),
		UnblockHandler:         handlers.NewUnblockHandler(logger, c.Worker),
		ListClicksHandler:      handlers.NewListClicksHandler(logger, c.ClickLogRepository),
		HealthHandler:          c.HealthHandler,
		GetVersionHandler:      c.GetVersionHandler,
	}

	c.WSHandlerTransport = &wsHandlers.HandlerTransportDTO{
		NotificationsHandler: wsHandlers.NewNotificationsHandler(
			logger,
			c.Hub,
			cfg.Websocket.PingPeriod,
			cfg.Websocket.PongWait,
		),
	}
	return nil
}

func (c *Container) buildReputation(cfg *config.Config, logger *logrus.Logger) (reputation.Provider, error) {
	var providers []reputation.Provider
	for _, name := range cfg.Reputation.Providers {
		switch name {
		case reputation.IPAPIProviderName:
			client := httpx.NewFastHTTPClient(httpx.WithTimeout(cfg.Reputation.Timeout))
			providers = append(providers, reputation.NewIPAPIProvider(client, cfg.Reputation.IPAPI))
		case reputation.MaxMindProviderName:
			mm, err := reputation.OpenMaxMind(cfg.Reputation.MaxMind)
			if err != nil {
				return nil, fmt.Errorf("failed to open maxmind databases: %w", err)
			}
			c.closers = append(c.closers, mm.Close)
			providers = append(providers, mm)
		default:
			return nil, fmt.Errorf("unknown reputation provider %q", name)
		}
	}
	if len(providers) == 0 {
		return nil, errors.New("no reputation provider configured")
	}
	breaker := httpx.NewCircuitBreaker("reputation", cfg.Reputation.BreakerTimeout, cfg.Reputation.MaxFailures, logger)
	return reputation.NewCachedProvider(
		reputation.NewChain(providers...),
		c.Cache,
		breaker,
		cfg.Reputation.CacheTTL,
		logger,
	), nil
}

// Start launches the background sweepers of process local state. They stop
// when ctx is done.
func (c *Container) Start(ctx context.Context) {
	for _, run := range c.janitors {
		go run(ctx)
	}
}

// Close releases what NewContainer opened, last opened first.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
