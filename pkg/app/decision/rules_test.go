package decision

import (
	"testing"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	domainDecision "github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/stretchr/testify/assert"
)

func TestSubnetHelpers(t *testing.T) {
	assert.Equal(t, "1.2.0.0/16", Subnet16("1.2.3.4"))
	assert.Equal(t, "1.2.3.0/24", Subnet24("1.2.3.4"))
	assert.Equal(t, "1.2.0.0/16", Subnet16("::ffff:1.2.3.4"))
	assert.Empty(t, Subnet16("2001:db8::1"))
	assert.Empty(t, Subnet24("2001:db8::1"))
	assert.Empty(t, Subnet16("not-an-ip"))
	assert.Empty(t, Subnet16(""))
	assert.True(t, IsIPv4("8.8.8.8"))
	assert.False(t, IsIPv4("::1"))
}

func TestEscalate(t *testing.T) {
	tests := []struct {
		name    string
		current string
		seen    []string
		scope   domainDecision.Scope
		target  string
	}{
		{"single address", "1.2.3.4", []string{"1.2.3.4"}, domainDecision.ScopeExact, "1.2.3.4"},
		{"shared /24", "1.2.3.9", []string{"1.2.3.4", "1.2.3.9", "1.2.3.200"}, domainDecision.ScopeSubnet24, "1.2.3.0/24"},
		{"shared /16", "1.2.9.9", []string{"1.2.3.4", "1.2.9.9"}, domainDecision.ScopeSubnet16, "1.2.0.0/16"},
		{"mixed", "9.9.9.9", []string{"1.2.3.4", "9.9.9.9"}, domainDecision.ScopeExact, "9.9.9.9"},
		{"shared first octet only", "1.3.0.1", []string{"1.2.0.1", "1.3.0.1"}, domainDecision.ScopeExact, "1.3.0.1"},
		{"ipv6 in the pattern", "1.2.3.4", []string{"1.2.3.4", "2001:db8::1"}, domainDecision.ScopeExact, "1.2.3.4"},
		{"nothing seen", "1.2.3.4", nil, domainDecision.ScopeExact, "1.2.3.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, target := Escalate(tt.current, tt.seen)
			assert.Equal(t, tt.scope, scope)
			assert.Equal(t, tt.target, target)
		})
	}
}

func enriched(ip string, rep click.IPReputation) *click.EnrichedClick {
	return &click.EnrichedClick{
		RawClick:    click.RawClick{IP: ip, SessionID: "s"},
		Fingerprint: "f00dfeedcafe",
		Reputation:  rep,
	}
}

var knownISP = click.IPReputation{ISP: "Acme Telecom", Org: "Acme", Status: click.ReputationSuccess}

func TestLocalBypassRule(t *testing.T) {
	on := LocalBypassRule(true)
	for _, ip := range []string{"127.0.0.1", "10.1.2.3", "192.168.0.10", "172.16.5.5", "::1"} {
		d, ok := on(enriched(ip, knownISP), domainDecision.RuleContext{})
		assert.True(t, ok, ip)
		assert.Equal(t, domainDecision.ReasonLocalDevelopment, d.Reason)
	}
	_, ok := on(enriched("8.8.8.8", knownISP), domainDecision.RuleContext{})
	assert.False(t, ok)

	_, ok = LocalBypassRule(false)(enriched("127.0.0.1", knownISP), domainDecision.RuleContext{})
	assert.False(t, ok)
}

func TestAllowedISPRule(t *testing.T) {
	rule := AllowedISPRule([]string{"  ", "TELEFONICA", "vodafone"})

	d, ok := rule(enriched("8.8.8.8", click.IPReputation{ISP: "Telefonica de Espana", Status: click.ReputationSuccess}), domainDecision.RuleContext{})
	assert.True(t, ok)
	assert.Equal(t, domainDecision.Allow, d.Verdict)
	assert.Equal(t, domainDecision.ReasonAllowedISP, d.Reason)

	_, ok = rule(enriched("8.8.8.8", click.IPReputation{Org: "Vodafone Spain", Status: click.ReputationSuccess}), domainDecision.RuleContext{})
	assert.True(t, ok)

	_, ok = rule(enriched("8.8.8.8", knownISP), domainDecision.RuleContext{})
	assert.False(t, ok)

	_, ok = rule(enriched("8.8.8.8", click.FailedReputation()), domainDecision.RuleContext{})
	assert.False(t, ok)
}

func TestUnknownISPRule(t *testing.T) {
	rule := UnknownISPRule(3)

	d, ok := rule(enriched("8.8.8.8", click.FailedReputation()), domainDecision.RuleContext{IPCount: 3})
	assert.True(t, ok)
	assert.Equal(t, domainDecision.ReasonFrequencyOKNoISP, d.Reason)

	d, ok = rule(enriched("8.8.8.8", click.FailedReputation()), domainDecision.RuleContext{IPCount: 4})
	assert.True(t, ok)
	assert.Equal(t, domainDecision.ReasonHighFrequencyNoISP, d.Reason)
	assert.Equal(t, domainDecision.ScopeExact, d.Scope)
	assert.Equal(t, "8.8.8.8", d.Target)

	// empty ISP and Org count as unknown even on success
	_, ok = rule(enriched("8.8.8.8", click.IPReputation{Status: click.ReputationSuccess}), domainDecision.RuleContext{IPCount: 1})
	assert.True(t, ok)

	_, ok = rule(enriched("2001:db8::1", click.FailedReputation()), domainDecision.RuleContext{IPCount: 100})
	assert.False(t, ok)

	_, ok = rule(enriched("8.8.8.8", knownISP), domainDecision.RuleContext{IPCount: 100})
	assert.False(t, ok)
}

func TestDeviceFrequencyRule(t *testing.T) {
	rule := DeviceFrequencyRule(10, 3)

	_, ok := rule(enriched("1.2.3.4", knownISP), domainDecision.RuleContext{FingerprintCount: 10, FingerprintIPs: []string{"1.2.3.4"}})
	assert.False(t, ok)

	d, ok := rule(enriched("1.2.3.4", knownISP), domainDecision.RuleContext{FingerprintCount: 11, FingerprintIPs: []string{"1.2.3.4"}})
	assert.True(t, ok)
	assert.Equal(t, domainDecision.ReasonFraudDeviceFrequency, d.Reason)
	assert.Equal(t, domainDecision.ScopeExact, d.Scope)

	d, ok = rule(enriched("1.2.3.4", knownISP), domainDecision.RuleContext{FingerprintCount: 4, IsAdClick: true, FingerprintIPs: []string{"1.2.3.4"}})
	assert.True(t, ok)
	assert.Equal(t, domainDecision.Block, d.Verdict)
}

func TestSubnetFraudRule(t *testing.T) {
	rule := SubnetFraudRule(5)

	_, ok := rule(enriched("1.2.3.4", knownISP), domainDecision.RuleContext{Subnet16: "1.2.0.0/16", SubnetFraudCount: 4})
	assert.False(t, ok)

	d, ok := rule(enriched("1.2.3.4", knownISP), domainDecision.RuleContext{Subnet16: "1.2.0.0/16", SubnetFraudCount: 5})
	assert.True(t, ok)
	assert.Equal(t, domainDecision.ScopeSubnet16, d.Scope)
	assert.Equal(t, "1.2.0.0/16", d.Target)
	assert.Equal(t, domainDecision.ReasonFraudCIDRRange, d.Reason)

	_, ok = rule(enriched("2001:db8::1", knownISP), domainDecision.RuleContext{SubnetFraudCount: 50})
	assert.False(t, ok)
}
