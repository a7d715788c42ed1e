package enrichment

import (
	"context"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/app/adclick"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/fingerprint"
	infraPrometheus "github.com/NeuralTrust/ClickGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/reputation"
	"github.com/sirupsen/logrus"
)

const DefaultLookupTimeout = 3 * time.Second

//go:generate mockery --name=Enricher --dir=. --output=./mocks --filename=enricher_mock.go --case=underscore --with-expecter
type Enricher interface {
	Enrich(ctx context.Context, raw *click.RawClick) *click.EnrichedClick
}

type enricher struct {
	logger   *logrus.Logger
	provider reputation.Provider
	timeout  time.Duration
}

func NewEnricher(logger *logrus.Logger, provider reputation.Provider, timeout time.Duration) Enricher {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &enricher{
		logger:   logger,
		provider: provider,
		timeout:  timeout,
	}
}

// Enrich never fails. A failed or slow lookup yields a failed reputation and
// the rules fall back to per-IP frequency.
func (e *enricher) Enrich(ctx context.Context, raw *click.RawClick) *click.EnrichedClick {
	return &click.EnrichedClick{
		RawClick:    *raw,
		Fingerprint: fingerprint.Compute(raw),
		Reputation:  e.lookup(ctx, raw.IP),
		UAInfo:      fingerprint.ParseUserAgent(raw.UserAgent, raw.AcceptLanguage),
		AdClick:     adclick.Classify(raw.Referrer, raw.Query),
	}
}

func (e *enricher) lookup(ctx context.Context, ip string) click.IPReputation {
	if e.provider == nil || ip == "" {
		return click.FailedReputation()
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type result struct {
		rep click.IPReputation
		err error
	}
	done := make(chan result, 1)
	go func() {
		rep, err := e.provider.Lookup(ctx, ip)
		done <- result{rep: rep, err: err}
	}()

	select {
	case <-ctx.Done():
		infraPrometheus.ReputationLookups.WithLabelValues(e.provider.Name(), "timeout").Inc()
		e.logger.WithField("ip", ip).Warn("ip reputation lookup timed out")
		return click.FailedReputation()
	case r := <-done:
		if ctx.Err() != nil && r.err == nil {
			r.err = ctx.Err()
		}
		if r.err != nil {
			infraPrometheus.ReputationLookups.WithLabelValues(e.provider.Name(), "error").Inc()
			e.logger.WithError(r.err).WithField("ip", ip).Warn("ip reputation lookup failed")
			return click.FailedReputation()
		}
		infraPrometheus.ReputationLookups.WithLabelValues(e.provider.Name(), string(r.rep.Status)).Inc()
		if r.rep.Status != click.ReputationSuccess {
			return click.FailedReputation()
		}
		return r.rep
	}
}
