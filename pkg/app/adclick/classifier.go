package adclick

import (
	"net/url"
	"strings"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
)

const (
	SourceReferrer = "referrer"
	SourceQuery    = "query"
)

var (
	referrerMarkers = []string{"google.com", "googleadservices.com"}
	queryMarkers    = []string{"gclid", "gclsrc", "wbraid", "gbraid"}
)

// Classify tags a click as coming from an ad platform. The referrer table is
// checked before query parameters.
func Classify(referrer, query string) click.AdClassification {
	ref := strings.ToLower(referrer)
	for _, marker := range referrerMarkers {
		if strings.Contains(ref, marker) {
			return click.AdClassification{IsAdClick: true, Source: SourceReferrer, Match: marker}
		}
	}

	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil && len(values) == 0 {
		return click.AdClassification{}
	}
	for _, param := range queryMarkers {
		if values.Get(param) != "" {
			return click.AdClassification{IsAdClick: true, Source: SourceQuery, Match: param}
		}
	}
	return click.AdClassification{}
}
