package counter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/infra/counter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Hit_SlidingWindow(t *testing.T) {
	ctx := context.Background()
	store := counter.NewMemoryStore()
	window := 5 * time.Minute
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	n, err := store.Hit(ctx, "ip:1.2.3.4", t0, window)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, _ = store.Hit(ctx, "ip:1.2.3.4", t0.Add(4*time.Minute+59*time.Second), window)
	assert.Equal(t, int64(2), n)

	// the first click is exactly five minutes old and no longer counts
	n, _ = store.Hit(ctx, "ip:1.2.3.4", t0.Add(window), window)
	assert.Equal(t, int64(2), n)
}

func TestMemoryStore_Track(t *testing.T) {
	ctx := context.Background()
	store := counter.NewMemoryStore()
	window := 5 * time.Minute
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	_, _ = store.Track(ctx, "fp:a:ips", "1.2.3.4", t0, window)
	_, _ = store.Track(ctx, "fp:a:ips", "1.2.3.5", t0.Add(time.Minute), window)
	members, err := store.Track(ctx, "fp:a:ips", "1.2.3.4", t0.Add(2*time.Minute), window)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.2.3.4", "1.2.3.5"}, members)

	members, _ = store.Track(ctx, "fp:a:ips", "9.9.9.9", t0.Add(6*time.Minute), window)
	assert.Equal(t, []string{"1.2.3.4", "1.2.3.5", "9.9.9.9"}, members)

	members, _ = store.Track(ctx, "fp:a:ips", "9.9.9.9", t0.Add(7*time.Minute), window)
	assert.Equal(t, []string{"1.2.3.4", "9.9.9.9"}, members)
}

func TestMemoryStore_Incr_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := counter.NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Incr(ctx, "subnet:10.0.0.0/16:frauds")
		}()
	}
	wg.Wait()

	v, err := store.Get(ctx, "subnet:10.0.0.0/16:frauds")
	require.NoError(t, err)
	assert.Equal(t, int64(50), v)

	v, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestMemoryStore_Hit_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := counter.NewMemoryStore()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Hit(ctx, "fp:x", now, time.Minute)
		}()
	}
	wg.Wait()

	n, _ := store.Hit(ctx, "fp:x", now, time.Minute)
	assert.Equal(t, int64(21), n)
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store := counter.NewMemoryStore()
	t0 := time.Now()

	_, _ = store.Hit(ctx, "k", t0, time.Minute)
	_, _ = store.Track(ctx, "m", "a", t0, time.Minute)
	store.Sweep(t0.Add(2*time.Minute), time.Minute)

	n, _ := store.Hit(ctx, "k", t0.Add(2*time.Minute), time.Minute)
	assert.Equal(t, int64(1), n)
	members, _ := store.Track(ctx, "m", "b", t0.Add(2*time.Minute), time.Minute)
	assert.Equal(t, []string{"b"}, members)
}

func TestMemoryStore_RunJanitor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := counter.NewMemoryStore()
	old := time.Now().Add(-time.Hour)

	_, _ = store.Hit(ctx, "ip:1.2.3.4", old, time.Minute)
	_, _ = store.Track(ctx, "fp:abc:ips", "1.2.3.4", old, time.Minute)
	require.Equal(t, 2, store.Len())

	done := make(chan struct{})
	go func() {
		defer close(done)
		store.RunJanitor(ctx, 5*time.Millisecond, time.Minute)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
