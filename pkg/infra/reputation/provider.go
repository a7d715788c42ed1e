package reputation

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
)

var (
	ErrInvalidIP    = errors.New("invalid ip address")
	ErrLookupFailed = errors.New("reputation lookup failed")
)

// Provider resolves network operator and geo data for an address. Errors are
// expected and callers degrade to click.FailedReputation.
//
//go:generate mockery --name=Provider --dir=. --output=./mocks --filename=provider_mock.go --case=underscore --with-expecter
type Provider interface {
	Name() string
	Lookup(ctx context.Context, ip string) (click.IPReputation, error)
}

// Janitor is implemented by providers holding process local state that has
// to be swept.
type Janitor interface {
	RunJanitor(ctx context.Context, interval time.Duration)
}
