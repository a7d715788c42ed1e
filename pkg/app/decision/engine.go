package decision

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	domainDecision "github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/counter"
	infraPrometheus "github.com/NeuralTrust/ClickGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	DefaultWindow                 = 5 * time.Minute
	DefaultNoISPThreshold         = 3
	DefaultFingerprintThreshold   = 10
	DefaultAdFingerprintThreshold = 3
	DefaultSubnetThreshold        = 5

	fingerprintClicksKey = "fp:%s:clicks"
	fingerprintIPsKey    = "fp:%s:ips"
	ipClicksKey          = "ip:%s:clicks"
	subnetFraudsKey      = "subnet:%s:frauds"
)

type Config struct {
	LocalBypass            bool          `mapstructure:"local_bypass"`
	AllowedISPs            []string      `mapstructure:"allowed_isps"`
	NoISPThreshold         int64         `mapstructure:"no_isp_threshold"`
	FingerprintThreshold   int64         `mapstructure:"fingerprint_threshold"`
	AdFingerprintThreshold int64         `mapstructure:"ad_fingerprint_threshold"`
	SubnetThreshold        int64         `mapstructure:"subnet_threshold"`
	Window                 time.Duration `mapstructure:"window"`
}

func (c Config) withDefaults() Config {
	if c.NoISPThreshold <= 0 {
		c.NoISPThreshold = DefaultNoISPThreshold
	}
	if c.FingerprintThreshold <= 0 {
		c.FingerprintThreshold = DefaultFingerprintThreshold
	}
	if c.AdFingerprintThreshold <= 0 {
		c.AdFingerprintThreshold = DefaultAdFingerprintThreshold
	}
	if c.SubnetThreshold <= 0 {
		c.SubnetThreshold = DefaultSubnetThreshold
	}
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	return c
}

//go:generate mockery --name=Engine --dir=. --output=./mocks --filename=engine_mock.go --case=underscore --with-expecter
type Engine interface {
	// Decide records the click in the counter store, evaluates the rules and
	// returns the decision together with the counters it was based on.
	Decide(ctx context.Context, ec *click.EnrichedClick) (domainDecision.Decision, domainDecision.RuleContext)
	Evaluate(ec *click.EnrichedClick, rc domainDecision.RuleContext) domainDecision.Decision
}

type engine struct {
	logger *logrus.Logger
	store  counter.Store
	cfg    Config
	rules  []Rule
	now    func() time.Time
}

func NewEngine(logger *logrus.Logger, store counter.Store, cfg Config) Engine {
	cfg = cfg.withDefaults()
	return &engine{
		logger: logger,
		store:  store,
		cfg:    cfg,
		rules:  DefaultRules(cfg),
		now:    time.Now,
	}
}

// Evaluate folds over the rule chain. It never fails; without a match the
// click is allowed.
func (e *engine) Evaluate(ec *click.EnrichedClick, rc domainDecision.RuleContext) domainDecision.Decision {
	for _, rule := range e.rules {
		if d, ok := rule(ec, rc); ok {
			return d
		}
	}
	return domainDecision.NewAllow(domainDecision.ReasonOK)
}

func (e *engine) Decide(ctx context.Context, ec *click.EnrichedClick) (domainDecision.Decision, domainDecision.RuleContext) {
	rc := e.collect(ctx, ec)
	d := e.Evaluate(ec, rc)

	if d.Blocked() {
		d.Message = domainDecision.Message(d, ec.Fingerprint.String(), rc)
		if rc.Subnet16 != "" {
			if _, err := e.store.Incr(ctx, fmt.Sprintf(subnetFraudsKey, rc.Subnet16)); err != nil {
				e.logger.WithError(err).WithField("subnet", rc.Subnet16).Warn("failed to bump subnet fraud counter")
			}
		}
		e.logger.WithFields(logrus.Fields{
			"session_id":  ec.SessionID,
			"ip":          ec.IP,
			"fingerprint": ec.Fingerprint.Short(),
			"reason":      d.Reason,
			"scope":       d.Scope,
			"target":      d.Target,
		}).Warn("click blocked")
	} else {
		e.logger.WithFields(logrus.Fields{
			"session_id": ec.SessionID,
			"ip":         ec.IP,
			"reason":     d.Reason,
		}).Debug("click allowed")
	}

	infraPrometheus.DecisionsTotal.WithLabelValues(string(d.Verdict), string(d.Reason)).Inc()
	return d, rc
}

// collect records the click and reads back the counters. Store errors leave
// the affected counter at zero so evaluation falls through to later rules.
func (e *engine) collect(ctx context.Context, ec *click.EnrichedClick) domainDecision.RuleContext {
	now := e.now()
	rc := domainDecision.RuleContext{
		IsAdClick: ec.AdClick.IsAdClick,
		Subnet16:  Subnet16(ec.IP),
	}
	fields := logrus.Fields{"ip": ec.IP, "fingerprint": ec.Fingerprint.Short()}

	var err error
	if ec.Fingerprint != "" {
		if rc.FingerprintCount, err = e.store.Hit(ctx, fmt.Sprintf(fingerprintClicksKey, ec.Fingerprint), now, e.cfg.Window); err != nil {
			e.logger.WithError(err).WithFields(fields).Warn("failed to record fingerprint click")
		}
		if ec.IP != "" {
			if rc.FingerprintIPs, err = e.store.Track(ctx, fmt.Sprintf(fingerprintIPsKey, ec.Fingerprint), ec.IP, now, e.cfg.Window); err != nil {
				e.logger.WithError(err).WithFields(fields).Warn("failed to track fingerprint address")
			}
		}
	}
	if ec.IP != "" {
		if rc.IPCount, err = e.store.Hit(ctx, fmt.Sprintf(ipClicksKey, ec.IP), now, e.cfg.Window); err != nil {
			e.logger.WithError(err).WithFields(fields).Warn("failed to record ip click")
		}
	}
	if rc.Subnet16 != "" {
		if rc.SubnetFraudCount, err = e.store.Get(ctx, fmt.Sprintf(subnetFraudsKey, rc.Subnet16)); err != nil {
			e.logger.WithError(err).WithFields(fields).Warn("failed to read subnet fraud counter")
		}
	}
	return rc
}
