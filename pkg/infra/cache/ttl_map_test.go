package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLMap_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTTLMap[string](time.Hour)
	m.now = func() time.Time { return now }

	m.Set("8.8.8.8", "Google LLC")
	v, ok := m.Get("8.8.8.8")
	assert.True(t, ok)
	assert.Equal(t, "Google LLC", v)

	now = now.Add(time.Hour + time.Second)
	_, ok = m.Get("8.8.8.8")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_Sweep(t *testing.T) {
	now := time.Now()
	m := NewTTLMap[int](time.Minute)
	m.now = func() time.Time { return now }
	m.Set("a", 1)
	m.Set("b", 2)
	m.Delete("b")

	now = now.Add(2 * time.Minute)
	m.Sweep()
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_RunJanitor(t *testing.T) {
	now := time.Now()
	m := NewTTLMap[int](time.Minute)
	m.now = func() time.Time { return now }
	m.Set("a", 1)
	m.Set("b", 2)
	now = now.Add(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.RunJanitor(ctx, 5*time.Millisecond)
	}()

	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
