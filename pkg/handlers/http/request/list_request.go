package request

import (
	"fmt"
	"strconv"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/common"
)

var errScopeRequired = fmt.Errorf("scope is required for CIDR targets")

// ListQuery is the common paging input of the operator list endpoints.
type ListQuery struct {
	Limit int
	Since time.Time
}

// ParseListQuery reads limit and since (RFC3339) from raw query values.
// Missing values fall back to defaults; out of range limits are clamped.
func ParseListQuery(limitStr, sinceStr string) (ListQuery, error) {
	q := ListQuery{Limit: common.DefaultListLimit}
	if limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v <= 0 {
			return q, fmt.Errorf("limit must be a positive integer")
		}
		if v > common.MaxListLimit {
			v = common.MaxListLimit
		}
		q.Limit = v
	}
	if sinceStr != "" {
		t, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			return q, fmt.Errorf("since must be an RFC3339 timestamp")
		}
		q.Since = t
	}
	return q, nil
}
