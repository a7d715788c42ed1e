package request

import (
	"strings"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
)

type PowSolutionRequest struct {
	Challenge      string `json:"challenge" validate:"required,hexadecimal,max=128"`
	Nonce          string `json:"nonce" validate:"required,max=64"`
	RequiredPrefix string `json:"required_prefix" validate:"required,max=16"`
	Token          string `json:"token" validate:"required"`
}

type TrackClickRequest struct {
	SessionID      string              `json:"session_id" validate:"required,max=128"`
	AccountRef     string              `json:"account_ref,omitempty" validate:"omitempty,max=128"`
	UserAgent      string              `json:"user_agent,omitempty" validate:"max=1024"`
	Language       string              `json:"language,omitempty" validate:"max=64"`
	Timezone       string              `json:"timezone,omitempty" validate:"max=64"`
	ScreenWidth    int                 `json:"screen_width" validate:"min=0,max=100000"`
	ScreenHeight   int                 `json:"screen_height" validate:"min=0,max=100000"`
	ViewportWidth  int                 `json:"viewport_width" validate:"min=0,max=100000"`
	ViewportHeight int                 `json:"viewport_height" validate:"min=0,max=100000"`
	Canvas         string              `json:"canvas,omitempty" validate:"max=256"`
	Audio          string              `json:"audio,omitempty" validate:"max=256"`
	WebGL          string              `json:"webgl,omitempty" validate:"max=512"`
	Referrer       string              `json:"referrer,omitempty" validate:"max=2048"`
	URL            string              `json:"url,omitempty" validate:"max=2048"`
	Query          string              `json:"query,omitempty" validate:"max=2048"`
	Domain         string              `json:"domain,omitempty" validate:"max=255"`
	Honeypot       string              `json:"honeypot,omitempty" validate:"max=1024"`
	PoW            *PowSolutionRequest `json:"pow,omitempty" validate:"omitempty"`
}

func (r *TrackClickRequest) Validate() error {
	r.SessionID = strings.TrimSpace(r.SessionID)
	return validateStruct(r)
}

// ClickMeta is what the handler knows about the request beyond its body.
type ClickMeta struct {
	IP             string
	UserAgent      string
	AcceptLanguage string
	AccountRef     string
	ReceivedAt     time.Time
}

// ToRawClick merges the body with request metadata. The body user agent wins
// over the header; the header account wins over the body.
func (r *TrackClickRequest) ToRawClick(meta ClickMeta) *click.RawClick {
	raw := &click.RawClick{
		SessionID:      r.SessionID,
		AccountRef:     r.AccountRef,
		IP:             meta.IP,
		UserAgent:      r.UserAgent,
		AcceptLanguage: meta.AcceptLanguage,
		Language:       r.Language,
		Timezone:       r.Timezone,
		ScreenWidth:    r.ScreenWidth,
		ScreenHeight:   r.ScreenHeight,
		ViewportWidth:  r.ViewportWidth,
		ViewportHeight: r.ViewportHeight,
		Canvas:         r.Canvas,
		Audio:          r.Audio,
		WebGL:          r.WebGL,
		Referrer:       r.Referrer,
		URL:            r.URL,
		Query:          r.Query,
		Domain:         r.Domain,
		Honeypot:       r.Honeypot,
		ReceivedAt:     meta.ReceivedAt,
	}
	if raw.UserAgent == "" {
		raw.UserAgent = meta.UserAgent
	}
	if meta.AccountRef != "" {
		raw.AccountRef = meta.AccountRef
	}
	if r.PoW != nil {
		raw.PoW = &click.PowSolution{
			Challenge:      r.PoW.Challenge,
			Nonce:          r.PoW.Nonce,
			RequiredPrefix: r.PoW.RequiredPrefix,
			Token:          r.PoW.Token,
		}
	}
	return raw
}
