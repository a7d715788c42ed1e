package response

import (
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/app/gate"
	"github.com/NeuralTrust/ClickGuard/pkg/app/ingest"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/google/uuid"
)

type TrackClickResponse struct {
	Success     bool             `json:"success"`
	SessionID   string           `json:"session_id"`
	IP          string           `json:"ip"`
	Decision    decision.Verdict `json:"decision"`
	DecisionID  uuid.UUID        `json:"decision_id"`
	Reason      decision.Reason  `json:"reason"`
	Scope       decision.Scope   `json:"scope,omitempty"`
	Target      string           `json:"target,omitempty"`
	Message     string           `json:"message,omitempty"`
	Fingerprint string           `json:"fingerprint,omitempty"`
	IsAdClick   bool             `json:"is_ad_click"`
	Enqueued    bool             `json:"enqueued"`
	Timestamp   time.Time        `json:"timestamp"`
}

// ChallengeResponse is returned with 403 when the click has to prove work
// before it is scored.
type ChallengeResponse struct {
	Success   bool            `json:"success"`
	Error     string          `json:"error"`
	Reason    string          `json:"reason"`
	Challenge *gate.Challenge `json:"challenge,omitempty"`
}

func NewTrackClickResponse(sessionID, ip string, res *ingest.Result, at time.Time) TrackClickResponse {
	out := TrackClickResponse{
		Success:   true,
		SessionID: sessionID,
		IP:        ip,
		Enqueued:  res.Enqueued,
		Timestamp: at,
	}
	if res.Decision != nil {
		d := res.Decision
		out.Decision = d.Verdict
		out.DecisionID = d.ID
		out.Reason = d.Reason
		out.Scope = d.Scope
		out.Target = d.Target
		out.Message = d.Message
	}
	if res.Enriched != nil {
		out.Fingerprint = res.Enriched.Fingerprint.String()
		out.IsAdClick = res.Enriched.AdClick.IsAdClick
	}
	return out
}
