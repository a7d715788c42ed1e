package clicklog_test

import (
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/clicklog"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/stretchr/testify/assert"
)

func TestNewEntry_ExtractsCampaignParams(t *testing.T) {
	received := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ec := &click.EnrichedClick{
		RawClick: click.RawClick{
			SessionID:  "s-1",
			AccountRef: "acc-1",
			IP:         "8.8.8.8",
			Query:      "?gclid=abc&gclsrc=aw.ds&utm_source=google&utm_campaign=spring",
			Referrer:   "https://www.google.com/",
			ReceivedAt: received,
		},
		Fingerprint: "deadbeef",
		Reputation:  click.IPReputation{Status: click.ReputationSuccess, ISP: "Google LLC"},
		AdClick:     click.AdClassification{IsAdClick: true, Source: "query", Match: "gclid"},
	}
	d := decision.NewBlock(decision.ReasonFraudDeviceFrequency, decision.ScopeExact, "8.8.8.8")

	e := clicklog.NewEntry(ec, d, decision.RuleContext{FingerprintCount: 4}, clicklog.GateResult{PowPassed: true})

	assert.Equal(t, "abc", e.Gclid)
	assert.Equal(t, "aw.ds", e.Gclsrc)
	assert.Equal(t, "google", e.UTMSource)
	assert.Equal(t, "spring", e.UTMCampaign)
	assert.Empty(t, e.UTMMedium)
	assert.Equal(t, "BLOCK", e.Decision)
	assert.Equal(t, "EXACT", e.Scope)
	assert.Equal(t, int64(4), e.FingerprintCount)
	assert.True(t, e.IsAdClick)
	assert.True(t, e.PowPassed)
	assert.Equal(t, "Google LLC", e.Reputation["isp"])
	assert.Equal(t, received, e.CreatedAt)
}

func TestNewEntry_MalformedQuery(t *testing.T) {
	ec := &click.EnrichedClick{RawClick: click.RawClick{Query: "%zz"}}
	e := clicklog.NewEntry(ec, decision.NewAllow(decision.ReasonOK), decision.RuleContext{}, clicklog.GateResult{})
	assert.Empty(t, e.Gclid)
	assert.Equal(t, "ALLOW", e.Decision)
}
