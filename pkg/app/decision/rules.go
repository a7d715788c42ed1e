package decision

import (
	"net/netip"
	"strings"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	domainDecision "github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
)

// Rule inspects a click and reports a decision when it matches. Rules are
// evaluated in order and the first match wins.
type Rule func(ec *click.EnrichedClick, rc domainDecision.RuleContext) (domainDecision.Decision, bool)

// DefaultRules returns the fixed rule chain for cfg.
func DefaultRules(cfg Config) []Rule {
	return []Rule{
		LocalBypassRule(cfg.LocalBypass),
		AllowedISPRule(cfg.AllowedISPs),
		UnknownISPRule(cfg.NoISPThreshold),
		DeviceFrequencyRule(cfg.FingerprintThreshold, cfg.AdFingerprintThreshold),
		SubnetFraudRule(cfg.SubnetThreshold),
	}
}

func LocalBypassRule(enabled bool) Rule {
	return func(ec *click.EnrichedClick, _ domainDecision.RuleContext) (domainDecision.Decision, bool) {
		if !enabled || !isLocal(ec.IP) {
			return domainDecision.Decision{}, false
		}
		return domainDecision.NewAllow(domainDecision.ReasonLocalDevelopment), true
	}
}

func AllowedISPRule(allowed []string) Rule {
	needles := make([]string, 0, len(allowed))
	for _, a := range allowed {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			needles = append(needles, a)
		}
	}
	return func(ec *click.EnrichedClick, _ domainDecision.RuleContext) (domainDecision.Decision, bool) {
		if ec.Reputation.Status != click.ReputationSuccess {
			return domainDecision.Decision{}, false
		}
		isp := strings.ToLower(ec.Reputation.ISP)
		org := strings.ToLower(ec.Reputation.Org)
		for _, n := range needles {
			if (isp != "" && strings.Contains(isp, n)) || (org != "" && strings.Contains(org, n)) {
				return domainDecision.NewAllow(domainDecision.ReasonAllowedISP), true
			}
		}
		return domainDecision.Decision{}, false
	}
}

// UnknownISPRule counts clicks from the exact IP when the reputation lookup
// gave nothing usable. Only IPv4 sources qualify.
func UnknownISPRule(threshold int64) Rule {
	return func(ec *click.EnrichedClick, rc domainDecision.RuleContext) (domainDecision.Decision, bool) {
		if !ec.Reputation.UnknownISP() || !IsIPv4(ec.IP) {
			return domainDecision.Decision{}, false
		}
		if rc.IPCount > threshold {
			return domainDecision.NewBlock(domainDecision.ReasonHighFrequencyNoISP, domainDecision.ScopeExact, ec.IP), true
		}
		return domainDecision.NewAllow(domainDecision.ReasonFrequencyOKNoISP), true
	}
}

func DeviceFrequencyRule(threshold, adThreshold int64) Rule {
	return func(ec *click.EnrichedClick, rc domainDecision.RuleContext) (domainDecision.Decision, bool) {
		limit := threshold
		if rc.IsAdClick {
			limit = adThreshold
		}
		if rc.FingerprintCount <= limit {
			return domainDecision.Decision{}, false
		}
		scope, target := Escalate(ec.IP, rc.FingerprintIPs)
		return domainDecision.NewBlock(domainDecision.ReasonFraudDeviceFrequency, scope, target), true
	}
}

func SubnetFraudRule(threshold int64) Rule {
	return func(_ *click.EnrichedClick, rc domainDecision.RuleContext) (domainDecision.Decision, bool) {
		if rc.Subnet16 == "" || rc.SubnetFraudCount < threshold {
			return domainDecision.Decision{}, false
		}
		return domainDecision.NewBlock(domainDecision.ReasonFraudCIDRRange, domainDecision.ScopeSubnet16, rc.Subnet16), true
	}
}

// Escalate picks the tightest scope covering every address a fingerprint was
// seen from. Mixed or non IPv4 patterns fall back to the current address.
func Escalate(current string, seen []string) (domainDecision.Scope, string) {
	if len(seen) == 0 {
		return domainDecision.ScopeExact, current
	}
	addrs := make([]netip.Addr, 0, len(seen))
	for _, ip := range seen {
		addr, ok := parseIPv4(ip)
		if !ok {
			return domainDecision.ScopeExact, current
		}
		addrs = append(addrs, addr)
	}

	switch shared := sharedOctets(addrs); {
	case shared == 4:
		return domainDecision.ScopeExact, addrs[0].String()
	case shared == 3:
		return domainDecision.ScopeSubnet24, Subnet24(addrs[0].String())
	case shared == 2:
		return domainDecision.ScopeSubnet16, Subnet16(addrs[0].String())
	}
	return domainDecision.ScopeExact, current
}
