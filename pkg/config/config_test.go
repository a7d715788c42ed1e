package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/infra/queue"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir(), "missing")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.APIPort)
	assert.Equal(t, queue.DriverKafka, cfg.Queue.Driver)
	assert.Equal(t, time.Hour, cfg.Queue.TTL)
	assert.Equal(t, int64(3), cfg.Rules.NoISPThreshold)
	assert.Equal(t, int64(10), cfg.Rules.FingerprintThreshold)
	assert.Equal(t, int64(3), cfg.Rules.AdFingerprintThreshold)
	assert.Equal(t, int64(5), cfg.Rules.SubnetThreshold)
	assert.Equal(t, 5*time.Minute, cfg.Rules.Window)
	assert.Equal(t, 4, cfg.Gate.Difficulty)
	assert.Equal(t, []time.Duration{5 * time.Second, 15 * time.Second, 30 * time.Second, 60 * time.Second}, cfg.Enforcement.Backoff)
	assert.Equal(t, time.Hour, cfg.Reputation.CacheTTL)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  api_port: 9000
rules:
  allowed_isps: ["Google", "Comcast"]
  fingerprint_threshold: 20
queue:
  driver: memory
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))
	t.Setenv("GATE_POW_DIFFICULTY", "6")
	t.Setenv("SERVER_API_PORT", "9100")

	cfg, err := load(viper.New(), dir, "config")
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.APIPort)
	assert.Equal(t, 6, cfg.Gate.Difficulty)
	assert.Equal(t, []string{"Google", "Comcast"}, cfg.Rules.AllowedISPs)
	assert.Equal(t, int64(20), cfg.Rules.FingerprintThreshold)
	assert.Equal(t, queue.DriverMemory, cfg.Queue.Driver)
}

func TestLoad_ListsFromEnv(t *testing.T) {
	t.Setenv("REPUTATION_PROVIDERS", "maxmind,ip-api")
	t.Setenv("ENFORCEMENT_BACKOFF", "1s,2s")

	cfg, err := load(viper.New(), t.TempDir(), "missing")
	require.NoError(t, err)

	assert.Equal(t, []string{"maxmind", "ip-api"}, cfg.Reputation.Providers)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, cfg.Enforcement.Backoff)
	assert.Equal(t, 10*time.Second, cfg.Enforcement.DrainTimeout)
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir(), "missing")
	require.NoError(t, err)

	assert.Error(t, cfg.Validate(RoleAPI))
	assert.Error(t, cfg.Validate(RoleWorker))

	cfg.Gate.Secret = "gate-secret"
	cfg.Auth.Secret = "auth-secret"
	cfg.AdPlatform.BaseURL = "https://ads.example.com"
	assert.NoError(t, cfg.Validate(RoleAPI))
	assert.NoError(t, cfg.Validate(RoleWorker))

	cfg.Queue.Driver = queue.DriverMemory
	assert.Error(t, cfg.Validate(RoleAPI))
	assert.NoError(t, cfg.Validate(RoleStandalone))

	cfg.AdPlatform.BaseURL = ""
	assert.Error(t, cfg.Validate(RoleStandalone))
}
