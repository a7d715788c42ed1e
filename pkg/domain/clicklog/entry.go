package clicklog

import (
	"net/url"
	"strings"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry is the audit record of one scored click.
type Entry struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountRef       string         `json:"account_ref" gorm:"type:text;index"`
	SessionID        string         `json:"session_id" gorm:"type:text"`
	IP               string         `json:"ip" gorm:"type:text;not null"`
	Fingerprint      string         `json:"fingerprint" gorm:"type:text;index"`
	FingerprintCount int64          `json:"fingerprint_count"`
	IsAdClick        bool           `json:"is_ad_click"`
	Decision         string         `json:"decision" gorm:"type:text;not null"`
	Reason           string         `json:"reason" gorm:"type:text;not null"`
	Scope            string         `json:"scope,omitempty" gorm:"type:text"`
	Target           string         `json:"target,omitempty" gorm:"type:text"`
	Message          string         `json:"message,omitempty" gorm:"type:text"`
	Honeypot         bool           `json:"honeypot"`
	PowPassed        bool           `json:"pow_passed"`
	URL              string         `json:"url" gorm:"type:text"`
	Query            string         `json:"query" gorm:"type:text"`
	Gclid            string         `json:"gclid,omitempty" gorm:"type:text"`
	Gclsrc           string         `json:"gclsrc,omitempty" gorm:"type:text"`
	UTMSource        string         `json:"utm_source,omitempty" gorm:"type:text"`
	UTMMedium        string         `json:"utm_medium,omitempty" gorm:"type:text"`
	UTMCampaign      string         `json:"utm_campaign,omitempty" gorm:"type:text"`
	UTMTerm          string         `json:"utm_term,omitempty" gorm:"type:text"`
	UTMContent       string         `json:"utm_content,omitempty" gorm:"type:text"`
	Referrer         string         `json:"referrer" gorm:"type:text"`
	Domain           string         `json:"domain" gorm:"type:text"`
	Reputation       domain.JSONMap `json:"reputation" gorm:"type:jsonb"`
	CreatedAt        time.Time      `json:"created_at" gorm:"index"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return nil
}

func (e *Entry) TableName() string {
	return "click_logs"
}

// GateResult records which anti-automation checks the click went through.
type GateResult struct {
	Honeypot  bool
	PowPassed bool
}

func NewEntry(
	ec *click.EnrichedClick,
	d decision.Decision,
	rc decision.RuleContext,
	gate GateResult,
) *Entry {
	params := parseQuery(ec.Query)
	e := &Entry{
		AccountRef:       ec.AccountRef,
		SessionID:        ec.SessionID,
		IP:               ec.IP,
		Fingerprint:      ec.Fingerprint.String(),
		FingerprintCount: rc.FingerprintCount,
		IsAdClick:        ec.AdClick.IsAdClick,
		Decision:         string(d.Verdict),
		Reason:           string(d.Reason),
		Scope:            string(d.Scope),
		Target:           d.Target,
		Message:          d.Message,
		Honeypot:         gate.Honeypot,
		PowPassed:        gate.PowPassed,
		URL:              ec.URL,
		Query:            ec.Query,
		Gclid:            params.Get("gclid"),
		Gclsrc:           params.Get("gclsrc"),
		UTMSource:        params.Get("utm_source"),
		UTMMedium:        params.Get("utm_medium"),
		UTMCampaign:      params.Get("utm_campaign"),
		UTMTerm:          params.Get("utm_term"),
		UTMContent:       params.Get("utm_content"),
		Referrer:         ec.Referrer,
		Domain:           ec.Domain,
		Reputation:       reputationMap(ec.Reputation),
		CreatedAt:        ec.ReceivedAt,
	}
	return e
}

func parseQuery(raw string) url.Values {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return url.Values{}
	}
	return values
}

func reputationMap(r click.IPReputation) domain.JSONMap {
	return domain.JSONMap{
		"status":  string(r.Status),
		"source":  r.Source,
		"isp":     r.ISP,
		"org":     r.Org,
		"country": r.Country,
		"region":  r.Region,
		"city":    r.City,
		"lat":     r.Lat,
		"lon":     r.Lon,
		"vpn":     r.VPN,
		"proxy":   r.Proxy,
		"hosting": r.Hosting,
		"tor":     r.Tor,
		"mobile":  r.Mobile,
	}
}
