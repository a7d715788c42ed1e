package ingest

import (
	"context"
	"time"

	appClicklog "github.com/NeuralTrust/ClickGuard/pkg/app/clicklog"
	appDecision "github.com/NeuralTrust/ClickGuard/pkg/app/decision"
	"github.com/NeuralTrust/ClickGuard/pkg/app/enrichment"
	"github.com/NeuralTrust/ClickGuard/pkg/app/gate"
	"github.com/NeuralTrust/ClickGuard/pkg/app/notify"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/action"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/clicklog"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	infraPrometheus "github.com/NeuralTrust/ClickGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/queue"
	"github.com/sirupsen/logrus"
)

const DefaultPublishTimeout = 2 * time.Second

type Config struct {
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

// Result is what the tracking endpoint needs to answer a click. Decision is
// only set when the gate passed.
type Result struct {
	Gate     gate.Result
	Decision *decision.Decision
	Context  decision.RuleContext
	Enriched *click.EnrichedClick
	Enqueued bool
}

// Pipeline runs a received click through gate, enrichment and decision. The
// click is read only; callers stamp ReceivedAt before handing it over.
//
//go:generate mockery --name=Pipeline --dir=. --output=./mocks --filename=pipeline_mock.go --case=underscore --with-expecter
type Pipeline interface {
	Process(ctx context.Context, raw *click.RawClick) *Result
}

type pipeline struct {
	logger    *logrus.Logger
	gate      gate.Gate
	enricher  enrichment.Enricher
	engine    appDecision.Engine
	publisher queue.Publisher
	writer    appClicklog.Writer
	notifier  notify.Notifier
	cfg       Config
	now       func() time.Time
}

func NewPipeline(
	logger *logrus.Logger,
	g gate.Gate,
	enricher enrichment.Enricher,
	engine appDecision.Engine,
	publisher queue.Publisher,
	writer appClicklog.Writer,
	notifier notify.Notifier,
	cfg Config,
) Pipeline {
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = DefaultPublishTimeout
	}
	return &pipeline{
		logger:    logger,
		gate:      g,
		enricher:  enricher,
		engine:    engine,
		publisher: publisher,
		writer:    writer,
		notifier:  notifier,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (p *pipeline) Process(ctx context.Context, raw *click.RawClick) *Result {
	res := &Result{Gate: p.gate.Check(raw)}
	if res.Gate.Outcome != gate.OutcomePass {
		if res.Gate.Honeypot || res.Gate.Outcome == gate.OutcomeReject {
			p.notify(ctx, raw.AccountRef, notify.EventThreatDetected, map[string]interface{}{
				"ip":         raw.IP,
				"session_id": raw.SessionID,
				"outcome":    res.Gate.Outcome.String(),
				"reason":     res.Gate.Reason,
			})
		}
		return res
	}

	start := time.Now()
	ec := p.enricher.Enrich(ctx, raw)
	d, rc := p.engine.Decide(ctx, ec)
	infraPrometheus.DecisionLatency.Observe(float64(time.Since(start).Milliseconds()))
	res.Decision = &d
	res.Context = rc
	res.Enriched = ec

	if d.Blocked() {
		if raw.AccountRef == "" {
			p.logger.WithFields(logrus.Fields{
				"decision_id": d.ID,
				"target":      d.Target,
				"reason":      d.Reason,
			}).Warn("block decision has no account, not enqueued")
		} else {
			res.Enqueued = p.enqueue(ctx, raw.AccountRef, d)
		}
		p.notify(ctx, raw.AccountRef, notify.EventFraudDetected, map[string]interface{}{
			"ip":          raw.IP,
			"fingerprint": ec.Fingerprint.Short(),
			"reason":      d.Reason,
			"scope":       d.Scope,
			"target":      d.Target,
			"message":     d.Message,
		})
	}

	if p.writer != nil {
		p.writer.Write(clicklog.NewEntry(ec, d, rc, clicklog.GateResult{
			Honeypot:  res.Gate.Honeypot,
			PowPassed: res.Gate.PowPassed,
		}))
	}

	p.notify(ctx, raw.AccountRef, notify.EventClickProcessed, map[string]interface{}{
		"ip":          raw.IP,
		"decision":    d.Verdict,
		"reason":      d.Reason,
		"is_ad_click": ec.AdClick.IsAdClick,
		"country":     ec.Reputation.Country,
		"isp":         ec.Reputation.ISP,
	})
	return res
}

// enqueue hands a block to the enforcement worker. Failures are logged and
// never change the decision returned to the caller.
func (p *pipeline) enqueue(ctx context.Context, accountRef string, d decision.Decision) bool {
	msg := action.NewMessage(accountRef, d, p.now())
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.PublishTimeout)
	defer cancel()
	if err := p.publisher.Publish(pubCtx, msg); err != nil {
		p.logger.WithError(err).WithFields(logrus.Fields{
			"decision_id": d.ID,
			"target":      d.Target,
			"scope":       d.Scope,
		}).Error("failed to enqueue block action")
		return false
	}
	return true
}

func (p *pipeline) notify(ctx context.Context, accountRef string, event notify.EventName, payload map[string]interface{}) {
	if p.notifier == nil || accountRef == "" {
		return
	}
	if err := p.notifier.Publish(ctx, notify.Target{Group: accountRef}, event, payload); err != nil {
		p.logger.WithError(err).WithField("event", event).Debug("failed to publish notification")
	}
}
