package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	appClicklog "github.com/NeuralTrust/ClickGuard/pkg/app/clicklog"
	appDecision "github.com/NeuralTrust/ClickGuard/pkg/app/decision"
	"github.com/NeuralTrust/ClickGuard/pkg/app/enforcement"
	"github.com/NeuralTrust/ClickGuard/pkg/app/gate"
	"github.com/NeuralTrust/ClickGuard/pkg/app/ingest"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/adplatform"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/database"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/logger"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/queue"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/reputation"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig       `mapstructure:"server"`
	Metrics     MetricsConfig      `mapstructure:"metrics"`
	Log         logger.Config      `mapstructure:"log"`
	Database    database.Config    `mapstructure:"database"`
	Redis       RedisConfig        `mapstructure:"redis"`
	Queue       queue.Config       `mapstructure:"queue"`
	Reputation  ReputationConfig   `mapstructure:"reputation"`
	Rules       appDecision.Config `mapstructure:"rules"`
	Gate        gate.Config        `mapstructure:"gate"`
	Ingest      ingest.Config      `mapstructure:"ingest"`
	ClickLog    appClicklog.Config `mapstructure:"click_log"`
	Enforcement enforcement.Config `mapstructure:"enforcement"`
	AdPlatform  adplatform.Config  `mapstructure:"adplatform"`
	Websocket   WebsocketConfig    `mapstructure:"websocket"`
	Auth        AuthConfig         `mapstructure:"auth"`
}

type ServerConfig struct {
	APIPort     int    `mapstructure:"api_port"`
	WorkerPort  int    `mapstructure:"worker_port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Host        string `mapstructure:"host"`
	// TrustProxy makes X-Forwarded-For the source of the client IP.
	TrustProxy bool `mapstructure:"trust_proxy"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableProcess bool `mapstructure:"enable_process"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type ReputationConfig struct {
	// Providers lists lookups in the order they are tried: "maxmind", "ip-api".
	Providers      []string                 `mapstructure:"providers"`
	Timeout        time.Duration            `mapstructure:"timeout"`
	CacheTTL       time.Duration            `mapstructure:"cache_ttl"`
	BreakerTimeout time.Duration            `mapstructure:"breaker_timeout"`
	MaxFailures    uint32                   `mapstructure:"max_failures"`
	IPAPI          reputation.IPAPIConfig   `mapstructure:"ipapi"`
	MaxMind        reputation.MaxMindConfig `mapstructure:"maxmind"`
}

type WebsocketConfig struct {
	MaxConnections int           `mapstructure:"max_connections"`
	BufferSize     int           `mapstructure:"buffer_size"`
	PingPeriod     time.Duration `mapstructure:"ping_period"`
	PongWait       time.Duration `mapstructure:"pong_wait"`
	// Relay fans out notifications through Redis so every api replica's
	// subscribers receive events produced by workers.
	Relay bool `mapstructure:"relay"`
}

type AuthConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

var globalConfig Config

func Load(configPath string) error {
	cfg, err := load(viper.New(), configPath, "config")
	if err != nil {
		return err
	}
	globalConfig = *cfg
	return nil
}

func load(v *viper.Viper, configPath, fileName string) (*Config, error) {
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaultValues(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
	}

	var cfg Config
	// list keys set from the environment arrive as comma separated strings
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}
	return &cfg, nil
}

// setDefaultValues registers every key so environment overrides work even
// when the key is absent from the YAML file.
func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.api_port", 8080)
	v.SetDefault("server.worker_port", 8081)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.trust_proxy", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_process", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.console", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "clickguard")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("database.migrate_timeout", 30*time.Second)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)

	v.SetDefault("queue.driver", queue.DriverKafka)
	v.SetDefault("queue.ttl", queue.DefaultTTL)
	v.SetDefault("queue.buffer_size", queue.DefaultBufferSize)
	v.SetDefault("queue.kafka.brokers", "localhost:9092")
	v.SetDefault("queue.kafka.topic", "clickguard.actions")
	v.SetDefault("queue.kafka.group_id", "clickguard-enforcement")
	v.SetDefault("queue.kafka.poll_timeout", 500*time.Millisecond)

	v.SetDefault("reputation.providers", []string{reputation.IPAPIProviderName})
	v.SetDefault("reputation.timeout", 3*time.Second)
	v.SetDefault("reputation.cache_ttl", reputation.DefaultCacheTTL)
	v.SetDefault("reputation.breaker_timeout", 30*time.Second)
	v.SetDefault("reputation.max_failures", 5)
	v.SetDefault("reputation.ipapi.base_url", reputation.DefaultIPAPIBaseURL)
	v.SetDefault("reputation.ipapi.api_key", "")
	v.SetDefault("reputation.maxmind.asn_path", "")
	v.SetDefault("reputation.maxmind.city_path", "")

	v.SetDefault("rules.local_bypass", false)
	v.SetDefault("rules.allowed_isps", []string{})
	v.SetDefault("rules.no_isp_threshold", appDecision.DefaultNoISPThreshold)
	v.SetDefault("rules.fingerprint_threshold", appDecision.DefaultFingerprintThreshold)
	v.SetDefault("rules.ad_fingerprint_threshold", appDecision.DefaultAdFingerprintThreshold)
	v.SetDefault("rules.subnet_threshold", appDecision.DefaultSubnetThreshold)
	v.SetDefault("rules.window", appDecision.DefaultWindow)

	v.SetDefault("gate.pow_difficulty", gate.DefaultDifficulty)
	v.SetDefault("gate.required", false)
	v.SetDefault("gate.challenge_ttl", gate.DefaultChallengeTTL)
	v.SetDefault("gate.secret", "")

	v.SetDefault("ingest.publish_timeout", ingest.DefaultPublishTimeout)

	v.SetDefault("click_log.buffer_size", appClicklog.DefaultBufferSize)
	v.SetDefault("click_log.batch_size", appClicklog.DefaultBatchSize)
	v.SetDefault("click_log.flush_interval", appClicklog.DefaultFlushInterval)
	v.SetDefault("click_log.workers", appClicklog.DefaultWorkers)

	v.SetDefault("enforcement.backoff", enforcement.DefaultBackoff)
	v.SetDefault("enforcement.concurrency", 4)
	v.SetDefault("enforcement.block_ttl", time.Duration(0))
	v.SetDefault("enforcement.expiry_interval", time.Minute)
	v.SetDefault("enforcement.drain_timeout", 10*time.Second)

	v.SetDefault("adplatform.base_url", "")
	v.SetDefault("adplatform.token", "")
	v.SetDefault("adplatform.developer_token", "")
	v.SetDefault("adplatform.timeout", 10*time.Second)
	v.SetDefault("adplatform.rate_per_second", 5.0)
	v.SetDefault("adplatform.burst", 5)
	v.SetDefault("adplatform.breaker_timeout", 30*time.Second)
	v.SetDefault("adplatform.max_failures", 5)

	v.SetDefault("websocket.max_connections", 1000)
	v.SetDefault("websocket.buffer_size", 64)
	v.SetDefault("websocket.ping_period", 30*time.Second)
	v.SetDefault("websocket.pong_wait", 45*time.Second)
	v.SetDefault("websocket.relay", true)

	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
}

// Validate reports settings that make a role unable to start.
func (c *Config) Validate(role string) error {
	var errs []error
	servesAPI := role == RoleAPI || role == RoleStandalone
	servesWorker := role == RoleWorker || role == RoleStandalone
	if c.Gate.Secret == "" && servesAPI {
		errs = append(errs, errors.New("gate.secret is required"))
	}
	if c.Auth.Secret == "" && servesAPI {
		errs = append(errs, errors.New("auth.secret is required"))
	}
	if c.AdPlatform.BaseURL == "" && servesWorker {
		errs = append(errs, errors.New("adplatform.base_url is required"))
	}
	switch c.Queue.Driver {
	case queue.DriverKafka, queue.DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown queue.driver %q", c.Queue.Driver))
	}
	if c.Queue.Driver == queue.DriverMemory && role != RoleStandalone {
		errs = append(errs, errors.New("queue.driver=memory is only valid for the standalone role"))
	}
	return errors.Join(errs...)
}

const (
	RoleAPI        = "api"
	RoleWorker     = "worker"
	RoleStandalone = "standalone"
)

func GetConfig() *Config {
	return &globalConfig
}
