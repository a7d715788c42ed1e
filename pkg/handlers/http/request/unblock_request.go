package request

import (
	"strings"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
)

type UnblockRequest struct {
	Target string `json:"target" validate:"required,ip|cidr"`
	Scope  string `json:"scope,omitempty" validate:"omitempty,oneof=EXACT SUBNET_24 SUBNET_16"`
}

// Validate defaults the scope from the target shape: a bare IP is EXACT, a
// CIDR must name its scope.
func (r *UnblockRequest) Validate() error {
	r.Target = strings.TrimSpace(r.Target)
	r.Scope = strings.ToUpper(strings.TrimSpace(r.Scope))
	if r.Scope == "" && !strings.Contains(r.Target, "/") {
		r.Scope = string(decision.ScopeExact)
	}
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Scope == "" {
		return errScopeRequired
	}
	return nil
}

func (r *UnblockRequest) ScopeValue() decision.Scope {
	return decision.Scope(r.Scope)
}
