package ingest_test

import (
	"context"
	"errors"
	"testing"

	clicklogMocks "github.com/NeuralTrust/ClickGuard/pkg/app/clicklog/mocks"
	decisionMocks "github.com/NeuralTrust/ClickGuard/pkg/app/decision/mocks"
	enrichmentMocks "github.com/NeuralTrust/ClickGuard/pkg/app/enrichment/mocks"
	"github.com/NeuralTrust/ClickGuard/pkg/app/gate"
	gateMocks "github.com/NeuralTrust/ClickGuard/pkg/app/gate/mocks"
	"github.com/NeuralTrust/ClickGuard/pkg/app/ingest"
	"github.com/NeuralTrust/ClickGuard/pkg/app/notify"
	notifyMocks "github.com/NeuralTrust/ClickGuard/pkg/app/notify/mocks"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/action"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/clicklog"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	queueMocks "github.com/NeuralTrust/ClickGuard/pkg/infra/queue/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	gate      *gateMocks.Gate
	enricher  *enrichmentMocks.Enricher
	engine    *decisionMocks.Engine
	publisher *queueMocks.Publisher
	writer    *clicklogMocks.Writer
	notifier  *notifyMocks.Notifier
}

func newPipeline(t *testing.T) (ingest.Pipeline, deps) {
	t.Helper()
	d := deps{
		gate:      gateMocks.NewGate(t),
		enricher:  enrichmentMocks.NewEnricher(t),
		engine:    decisionMocks.NewEngine(t),
		publisher: queueMocks.NewPublisher(t),
		writer:    clicklogMocks.NewWriter(t),
		notifier:  notifyMocks.NewNotifier(t),
	}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	p := ingest.NewPipeline(logger, d.gate, d.enricher, d.engine, d.publisher, d.writer, d.notifier, ingest.Config{})
	return p, d
}

func rawClick() *click.RawClick {
	return &click.RawClick{
		SessionID:  "sess-1",
		AccountRef: "123-456-7890",
		IP:         "203.0.113.7",
		UserAgent:  "Mozilla/5.0",
	}
}

func enriched(raw *click.RawClick) *click.EnrichedClick {
	return &click.EnrichedClick{
		RawClick:    *raw,
		Fingerprint: click.Fingerprint("abcdef0123456789"),
		Reputation:  click.IPReputation{Status: click.ReputationSuccess, ISP: "Example ISP"},
	}
}

func TestPipeline_AllowIsNotEnqueued(t *testing.T) {
	p, d := newPipeline(t)
	raw := rawClick()
	ec := enriched(raw)
	allow := decision.NewAllow(decision.ReasonOK)

	d.gate.EXPECT().Check(raw).Return(gate.Result{Outcome: gate.OutcomePass})
	d.enricher.EXPECT().Enrich(mock.Anything, raw).Return(ec)
	d.engine.EXPECT().Decide(mock.Anything, ec).Return(allow, decision.RuleContext{FingerprintCount: 1})
	d.writer.EXPECT().Write(mock.MatchedBy(func(e *clicklog.Entry) bool {
		return e.Decision == "ALLOW" && e.Reason == "OK" && e.IP == raw.IP
	})).Return(true)
	d.notifier.EXPECT().Publish(mock.Anything, notify.Target{Group: raw.AccountRef}, notify.EventClickProcessed, mock.Anything).Return(nil)

	res := p.Process(context.Background(), raw)

	require.NotNil(t, res.Decision)
	assert.Equal(t, decision.Allow, res.Decision.Verdict)
	assert.False(t, res.Enqueued)
	d.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPipeline_BlockIsEnqueued(t *testing.T) {
	p, d := newPipeline(t)
	raw := rawClick()
	ec := enriched(raw)
	block := decision.NewBlock(decision.ReasonFraudDeviceFrequency, decision.ScopeSubnet24, "203.0.113.0/24")

	d.gate.EXPECT().Check(raw).Return(gate.Result{Outcome: gate.OutcomePass, PowPassed: true})
	d.enricher.EXPECT().Enrich(mock.Anything, raw).Return(ec)
	d.engine.EXPECT().Decide(mock.Anything, ec).Return(block, decision.RuleContext{FingerprintCount: 11})
	d.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(m action.Message) bool {
		return m.Target == "203.0.113.0/24" &&
			m.Scope == decision.ScopeSubnet24 &&
			m.AccountRef == raw.AccountRef &&
			m.DecisionID == block.ID
	})).Return(nil).Once()
	d.writer.EXPECT().Write(mock.MatchedBy(func(e *clicklog.Entry) bool {
		return e.Decision == "BLOCK" && e.PowPassed
	})).Return(true)
	d.notifier.EXPECT().Publish(mock.Anything, mock.Anything, notify.EventFraudDetected, mock.Anything).Return(nil).Once()
	d.notifier.EXPECT().Publish(mock.Anything, mock.Anything, notify.EventClickProcessed, mock.Anything).Return(nil).Once()

	res := p.Process(context.Background(), raw)

	require.NotNil(t, res.Decision)
	assert.True(t, res.Decision.Blocked())
	assert.True(t, res.Enqueued)
}

func TestPipeline_PublishFailureKeepsDecision(t *testing.T) {
	p, d := newPipeline(t)
	raw := rawClick()
	ec := enriched(raw)
	block := decision.NewBlock(decision.ReasonHighFrequencyNoISP, decision.ScopeExact, raw.IP)

	d.gate.EXPECT().Check(raw).Return(gate.Result{Outcome: gate.OutcomePass})
	d.enricher.EXPECT().Enrich(mock.Anything, raw).Return(ec)
	d.engine.EXPECT().Decide(mock.Anything, ec).Return(block, decision.RuleContext{IPCount: 4})
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	d.writer.EXPECT().Write(mock.Anything).Return(true)
	d.notifier.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res := p.Process(context.Background(), raw)

	require.NotNil(t, res.Decision)
	assert.True(t, res.Decision.Blocked())
	assert.False(t, res.Enqueued)
}

func TestPipeline_BlockWithoutAccountIsNotEnqueued(t *testing.T) {
	p, d := newPipeline(t)
	raw := rawClick()
	raw.AccountRef = ""
	ec := enriched(raw)
	block := decision.NewBlock(decision.ReasonFraudDeviceFrequency, decision.ScopeExact, raw.IP)

	d.gate.EXPECT().Check(raw).Return(gate.Result{Outcome: gate.OutcomePass})
	d.enricher.EXPECT().Enrich(mock.Anything, raw).Return(ec)
	d.engine.EXPECT().Decide(mock.Anything, ec).Return(block, decision.RuleContext{FingerprintCount: 11})
	d.writer.EXPECT().Write(mock.MatchedBy(func(e *clicklog.Entry) bool {
		return e.Decision == "BLOCK"
	})).Return(true)

	res := p.Process(context.Background(), raw)

	require.NotNil(t, res.Decision)
	assert.True(t, res.Decision.Blocked())
	assert.False(t, res.Enqueued)
	d.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	d.notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_LeavesCallerClickUntouched(t *testing.T) {
	p, d := newPipeline(t)
	raw := rawClick()
	before := *raw
	ec := enriched(raw)

	d.gate.EXPECT().Check(raw).Return(gate.Result{Outcome: gate.OutcomePass})
	d.enricher.EXPECT().Enrich(mock.Anything, raw).Return(ec)
	d.engine.EXPECT().Decide(mock.Anything, ec).Return(decision.NewAllow(decision.ReasonOK), decision.RuleContext{})
	d.writer.EXPECT().Write(mock.Anything).Return(true)
	d.notifier.EXPECT().Publish(mock.Anything, mock.Anything, notify.EventClickProcessed, mock.Anything).Return(nil)

	p.Process(context.Background(), raw)

	assert.Equal(t, before, *raw)
	assert.True(t, raw.ReceivedAt.IsZero())
}

func TestPipeline_GateStopsProcessing(t *testing.T) {
	t.Run("honeypot raises threat", func(t *testing.T) {
		p, d := newPipeline(t)
		raw := rawClick()
		raw.Honeypot = "filled"

		d.gate.EXPECT().Check(raw).Return(gate.Result{
			Outcome:   gate.OutcomeChallenge,
			Reason:    gate.ReasonHoneypot,
			Honeypot:  true,
			Challenge: &gate.Challenge{Challenge: "abc", RequiredPrefix: "0000"},
		})
		d.notifier.EXPECT().Publish(mock.Anything, mock.Anything, notify.EventThreatDetected, mock.Anything).Return(nil).Once()

		res := p.Process(context.Background(), raw)
		assert.Nil(t, res.Decision)
		assert.Equal(t, gate.OutcomeChallenge, res.Gate.Outcome)
		d.enricher.AssertNotCalled(t, "Enrich", mock.Anything, mock.Anything)
	})

	t.Run("missing solution is a silent challenge", func(t *testing.T) {
		p, d := newPipeline(t)
		raw := rawClick()

		d.gate.EXPECT().Check(raw).Return(gate.Result{Outcome: gate.OutcomeChallenge, Reason: gate.ReasonSolutionRequired})

		res := p.Process(context.Background(), raw)
		assert.Nil(t, res.Decision)
		d.notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid solution is rejected", func(t *testing.T) {
		p, d := newPipeline(t)
		raw := rawClick()
		raw.PoW = &click.PowSolution{Challenge: "abc", Nonce: "1", Token: "bad"}

		d.gate.EXPECT().Check(raw).Return(gate.Result{Outcome: gate.OutcomeReject, Reason: gate.ReasonInvalidToken})
		d.notifier.EXPECT().Publish(mock.Anything, mock.Anything, notify.EventThreatDetected, mock.Anything).Return(nil).Once()

		res := p.Process(context.Background(), raw)
		assert.Nil(t, res.Decision)
		assert.Equal(t, gate.OutcomeReject, res.Gate.Outcome)
	})
}
