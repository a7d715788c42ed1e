package reputation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/cache"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/httpx"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultCacheTTL = time.Hour
	cacheKeyPattern = "reputation:%s"
)

type cachedProvider struct {
	next    Provider
	redis   cache.Client
	local   *cache.TTLMap[click.IPReputation]
	breaker httpx.CircuitBreaker
	group   singleflight.Group
	ttl     time.Duration
	logger  *logrus.Logger
}

// NewCachedProvider fronts next with a local map, an optional Redis layer and
// a circuit breaker. Concurrent lookups of one address share a single call.
// Failed lookups are not cached.
func NewCachedProvider(
	next Provider,
	redisClient cache.Client,
	breaker httpx.CircuitBreaker,
	ttl time.Duration,
	logger *logrus.Logger,
) Provider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cachedProvider{
		next:    next,
		redis:   redisClient,
		local:   cache.NewTTLMap[click.IPReputation](ttl),
		breaker: breaker,
		ttl:     ttl,
		logger:  logger,
	}
}

// RunJanitor drops expired local entries every interval, or every TTL when
// interval is not positive.
func (p *cachedProvider) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = p.ttl
	}
	p.local.RunJanitor(ctx, interval)
}

func (p *cachedProvider) Name() string {
	return p.next.Name()
}

func (p *cachedProvider) Lookup(ctx context.Context, ip string) (click.IPReputation, error) {
	if rep, ok := p.local.Get(ip); ok {
		return rep, nil
	}
	if rep, ok := p.fromRedis(ctx, ip); ok {
		p.local.Set(ip, rep)
		return rep, nil
	}

	v, err, _ := p.group.Do(ip, func() (interface{}, error) {
		var rep click.IPReputation
		call := func() error {
			var lookupErr error
			rep, lookupErr = p.next.Lookup(ctx, ip)
			if errors.Is(lookupErr, ErrInvalidIP) {
				return errors.Join(httpx.ErrPermanent, lookupErr)
			}
			return lookupErr
		}
		var err error
		if p.breaker != nil {
			err = p.breaker.Execute(call)
		} else {
			err = call()
		}
		return rep, err
	})
	if err != nil {
		return click.FailedReputation(), err
	}
	rep, ok := v.(click.IPReputation)
	if !ok {
		return click.FailedReputation(), fmt.Errorf("%w: unexpected result type %T", ErrLookupFailed, v)
	}
	p.store(ctx, ip, rep)
	return rep, nil
}

func (p *cachedProvider) fromRedis(ctx context.Context, ip string) (click.IPReputation, bool) {
	if p.redis == nil {
		return click.IPReputation{}, false
	}
	raw, err := p.redis.Get(ctx, fmt.Sprintf(cacheKeyPattern, ip))
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.logger.WithError(err).Warn("failed to read reputation from cache")
		}
		return click.IPReputation{}, false
	}
	var rep click.IPReputation
	if err := json.Unmarshal([]byte(raw), &rep); err != nil {
		p.logger.WithError(err).Warn("invalid cached reputation")
		return click.IPReputation{}, false
	}
	return rep, true
}

func (p *cachedProvider) store(ctx context.Context, ip string, rep click.IPReputation) {
	p.local.Set(ip, rep)
	if p.redis == nil {
		return
	}
	data, err := json.Marshal(rep)
	if err != nil {
		return
	}
	if err := p.redis.Set(ctx, fmt.Sprintf(cacheKeyPattern, ip), string(data), p.ttl); err != nil {
		p.logger.WithError(err).Warn("failed to cache reputation")
	}
}
