package dependency_container

import (
	"context"
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/config"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/queue"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/reputation"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_StartRunsJanitorsUntilCancelled(t *testing.T) {
	c := &Container{}
	started := make(chan struct{}, 2)
	stopped := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		c.janitors = append(c.janitors, func(ctx context.Context) {
			started <- struct{}{}
			<-ctx.Done()
			stopped <- struct{}{}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("janitor was not started")
		}
	}

	cancel()
	for i := 0; i < 2; i++ {
		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("janitor did not stop")
		}
	}
}

func TestContainer_BuildAPIRegistersJanitorsForLocalState(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{}
	cfg.Queue.Driver = queue.DriverMemory
	cfg.Reputation.Providers = []string{reputation.IPAPIProviderName}

	c := &Container{Logger: logger}
	require.NoError(t, c.buildAPI(ContainerDI{Cfg: cfg, Logger: logger}))

	// reputation cache and in-memory counter store
	assert.Len(t, c.janitors, 2)
}
