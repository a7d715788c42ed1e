package response

import (
	"github.com/NeuralTrust/ClickGuard/pkg/domain/blocked"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/clicklog"
)

type ListBlockedResponse struct {
	Items []*blocked.Entry `json:"items"`
	Count int              `json:"count"`
	Limit int              `json:"limit"`
}

type ListClicksResponse struct {
	Items []*clicklog.Entry `json:"items"`
	Count int               `json:"count"`
	Limit int               `json:"limit"`
}

type VerifyChallengeResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
