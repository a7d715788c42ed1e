package click

import (
	"time"
)

// RawClick is a click as received from the tracker script. It is never
// mutated after binding.
type RawClick struct {
	SessionID      string       `json:"session_id"`
	AccountRef     string       `json:"account_ref"`
	IP             string       `json:"ip"`
	UserAgent      string       `json:"user_agent"`
	AcceptLanguage string       `json:"accept_language,omitempty"`
	Language       string       `json:"language"`
	Timezone       string       `json:"timezone"`
	ScreenWidth    int          `json:"screen_width"`
	ScreenHeight   int          `json:"screen_height"`
	ViewportWidth  int          `json:"viewport_width"`
	ViewportHeight int          `json:"viewport_height"`
	Canvas         string       `json:"canvas"`
	Audio          string       `json:"audio"`
	WebGL          string       `json:"webgl"`
	Referrer       string       `json:"referrer"`
	URL            string       `json:"url"`
	Query          string       `json:"query"`
	Domain         string       `json:"domain"`
	Honeypot       string       `json:"honeypot,omitempty"`
	PoW            *PowSolution `json:"pow,omitempty"`
	ReceivedAt     time.Time    `json:"received_at"`
}

type PowSolution struct {
	Challenge      string `json:"challenge"`
	Nonce          string `json:"nonce"`
	RequiredPrefix string `json:"required_prefix"`
	Token          string `json:"token"`
}

type Fingerprint string

func (f Fingerprint) String() string {
	return string(f)
}

// Short returns the first eight characters, used in logs and messages.
func (f Fingerprint) Short() string {
	if len(f) <= 8 {
		return string(f)
	}
	return string(f[:8])
}

type ReputationStatus string

const (
	ReputationSuccess ReputationStatus = "success"
	ReputationFail    ReputationStatus = "fail"
)

type IPReputation struct {
	ISP     string           `json:"isp"`
	Org     string           `json:"org"`
	Country string           `json:"country"`
	Region  string           `json:"region"`
	City    string           `json:"city"`
	Lat     float64          `json:"lat"`
	Lon     float64          `json:"lon"`
	VPN     bool             `json:"vpn"`
	Proxy   bool             `json:"proxy"`
	Hosting bool             `json:"hosting"`
	Tor     bool             `json:"tor"`
	Mobile  bool             `json:"mobile"`
	Status  ReputationStatus `json:"status"`
	Source  string           `json:"source,omitempty"`
}

// FailedReputation is the reputation attached when no provider answered.
func FailedReputation() IPReputation {
	return IPReputation{Status: ReputationFail}
}

// UnknownISP reports whether the lookup gave no usable network operator.
func (r IPReputation) UnknownISP() bool {
	return r.Status != ReputationSuccess || (r.ISP == "" && r.Org == "")
}

type UserAgentInfo struct {
	Device  string `json:"device"`
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Locale  string `json:"locale,omitempty"`
}

type AdClassification struct {
	IsAdClick bool   `json:"is_ad_click"`
	Source    string `json:"source,omitempty"`
	Match     string `json:"match,omitempty"`
}

type EnrichedClick struct {
	RawClick
	Fingerprint Fingerprint      `json:"fingerprint"`
	Reputation  IPReputation     `json:"reputation"`
	UAInfo      UserAgentInfo    `json:"user_agent_info"`
	AdClick     AdClassification `json:"ad_click"`
}
