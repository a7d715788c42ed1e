package reputation

import (
	"context"
	"errors"
	"strings"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
)

type chain struct {
	providers []Provider
}

// NewChain asks each provider in order and returns the first successful answer.
func NewChain(providers ...Provider) Provider {
	return &chain{providers: providers}
}

func (c *chain) Name() string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return strings.Join(names, ",")
}

func (c *chain) Lookup(ctx context.Context, ip string) (click.IPReputation, error) {
	var errs []error
	for _, p := range c.providers {
		rep, err := p.Lookup(ctx, ip)
		if err == nil && rep.Status == click.ReputationSuccess {
			return rep, nil
		}
		if err != nil {
			errs = append(errs, err)
		}
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		errs = append(errs, ErrLookupFailed)
	}
	return click.FailedReputation(), errors.Join(errs...)
}
