package decision

import (
	"fmt"

	"github.com/google/uuid"
)

type Verdict string

const (
	Allow Verdict = "ALLOW"
	Block Verdict = "BLOCK"
)

type Reason string

const (
	ReasonLocalDevelopment     Reason = "LOCAL_DEVELOPMENT"
	ReasonAllowedISP           Reason = "ALLOWED_ISP"
	ReasonHighFrequencyNoISP   Reason = "HIGH_FREQUENCY_NO_ISP"
	ReasonFrequencyOKNoISP     Reason = "FREQUENCY_OK_NO_ISP"
	ReasonFraudDeviceFrequency Reason = "FRAUD_DEVICE_FREQUENCY"
	ReasonFraudCIDRRange       Reason = "FRAUD_CIDR_RANGE"
	ReasonOK                   Reason = "OK"
)

type Scope string

const (
	ScopeExact    Scope = "EXACT"
	ScopeSubnet24 Scope = "SUBNET_24"
	ScopeSubnet16 Scope = "SUBNET_16"
)

func (s Scope) Valid() bool {
	switch s {
	case ScopeExact, ScopeSubnet24, ScopeSubnet16:
		return true
	}
	return false
}

// RuleContext carries the per-click counters the rules are evaluated against.
// Counts include the current click.
type RuleContext struct {
	FingerprintCount int64
	FingerprintIPs   []string
	IPCount          int64
	// Subnet16 is empty when the click IP is not IPv4.
	Subnet16         string
	SubnetFraudCount int64
	IsAdClick        bool
}

type Decision struct {
	ID      uuid.UUID `json:"id"`
	Verdict Verdict   `json:"decision"`
	Reason  Reason    `json:"reason"`
	Scope   Scope     `json:"scope,omitempty"`
	Target  string    `json:"target,omitempty"`
	Message string    `json:"message,omitempty"`
}

func (d Decision) Blocked() bool {
	return d.Verdict == Block
}

func NewAllow(reason Reason) Decision {
	return Decision{ID: uuid.New(), Verdict: Allow, Reason: reason}
}

func NewBlock(reason Reason, scope Scope, target string) Decision {
	return Decision{ID: uuid.New(), Verdict: Block, Reason: reason, Scope: scope, Target: target}
}

// Message renders an operator facing explanation of a block.
func Message(d Decision, fingerprint string, rc RuleContext) string {
	if !d.Blocked() {
		return ""
	}
	switch d.Reason {
	case ReasonFraudDeviceFrequency:
		fp := fingerprint
		if len(fp) > 8 {
			fp = fp[:8]
		}
		return fmt.Sprintf("Blocked: Device fingerprint (%s) seen too frequently (%d times).", fp, rc.FingerprintCount)
	case ReasonFraudCIDRRange:
		return fmt.Sprintf("Blocked: Subnet (%s) has too many frauds (%d).", rc.Subnet16, rc.SubnetFraudCount+1)
	case ReasonHighFrequencyNoISP:
		return fmt.Sprintf("Blocked: IP (%s) without ISP data clicked too often (%d times).", d.Target, rc.IPCount)
	default:
		return fmt.Sprintf("Blocked: Reason=%s", d.Reason)
	}
}
