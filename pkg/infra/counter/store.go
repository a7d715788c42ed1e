package counter

import (
	"context"
	"time"
)

// Store keeps the shared counters the decision rules read. Every mutation
// is atomic with respect to concurrent callers.
//
//go:generate mockery --name=Store --dir=. --output=./mocks --filename=store_mock.go --case=underscore --with-expecter
type Store interface {
	// Hit records one event for key at the given time and returns how many
	// events fall inside the trailing window, the new one included. Events
	// exactly window old are outside it.
	Hit(ctx context.Context, key string, at time.Time, window time.Duration) (int64, error)
	// Track associates member with key at the given time and returns the
	// distinct members seen inside the trailing window.
	Track(ctx context.Context, key, member string, at time.Time, window time.Duration) ([]string, error)
	Incr(ctx context.Context, key string) (int64, error)
	Get(ctx context.Context, key string) (int64, error)
}
