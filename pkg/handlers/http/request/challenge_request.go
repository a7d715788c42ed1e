package request

import "strings"

type IssueChallengeRequest struct {
	SessionID string `json:"session_id" validate:"required,max=128"`
}

func (r *IssueChallengeRequest) Validate() error {
	r.SessionID = strings.TrimSpace(r.SessionID)
	return validateStruct(r)
}

type VerifyChallengeRequest struct {
	SessionID string             `json:"session_id" validate:"required,max=128"`
	Solution  PowSolutionRequest `json:"solution"`
}

func (r *VerifyChallengeRequest) Validate() error {
	r.SessionID = strings.TrimSpace(r.SessionID)
	return validateStruct(r)
}
