package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewCircuitBreaker("ad-platform", time.Minute, 3, nil)
	failing := errors.New("upstream down")

	for i := 0; i < 3; i++ {
		err := breaker.Execute(func() error { return failing })
		assert.ErrorIs(t, err, failing)
	}
	assert.True(t, breaker.Open())

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Contains(t, err.Error(), "breaker (ad-platform)")
}

func TestCircuitBreaker_PermanentErrorsDoNotTrip(t *testing.T) {
	breaker := NewCircuitBreaker("reputation", time.Minute, 2, nil)
	bad := errors.Join(ErrPermanent, errors.New("400 bad request"))

	for i := 0; i < 5; i++ {
		err := breaker.Execute(func() error { return bad })
		assert.ErrorIs(t, err, ErrPermanent)
	}
	assert.False(t, breaker.Open())
}

func TestCircuitBreaker_Success(t *testing.T) {
	breaker := NewCircuitBreaker("ok", time.Second, 1, nil)
	assert.NoError(t, breaker.Execute(func() error { return nil }))
	assert.False(t, breaker.Open())
}
