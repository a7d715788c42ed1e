package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/app/gate"
	"github.com/NeuralTrust/ClickGuard/pkg/app/ingest"
	ingestMocks "github.com/NeuralTrust/ClickGuard/pkg/app/ingest/mocks"
	"github.com/NeuralTrust/ClickGuard/pkg/common"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/gofiber/fiber/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackApp(t *testing.T, trustProxy bool) (*fiber.App, *ingestMocks.Pipeline) {
	t.Helper()
	pipeline := ingestMocks.NewPipeline(t)
	h := NewTrackClickHandler(logrus.New(), pipeline, trustProxy)
	app := fiber.New()
	app.Post("/api/v1/track", h.Handle)
	return app, pipeline
}

func trackBody(t *testing.T, body map[string]interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return b
}

func decodeJSON(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

func TestTrackClick_AllowsClick(t *testing.T) {
	app, pipeline := newTrackApp(t, true)

	allow := decision.NewAllow(decision.ReasonOK)
	pipeline.EXPECT().
		Process(mock.Anything, mock.MatchedBy(func(raw *click.RawClick) bool {
			return raw.SessionID == "s-1" &&
				raw.IP == "203.0.113.7" &&
				raw.UserAgent == "ua-header" &&
				raw.AccountRef == "acc-header" &&
				raw.AcceptLanguage == "en-US"
		})).
		Return(&ingest.Result{
			Gate:     gate.Result{Outcome: gate.OutcomePass},
			Decision: &allow,
			Enriched: &click.EnrichedClick{Fingerprint: "abcdef0123456789"},
		})

	req := httptest.NewRequest("POST", "/api/v1/track", bytes.NewReader(trackBody(t, map[string]interface{}{
		"session_id":   "s-1",
		"account_ref":  "acc-body",
		"screen_width": 1920,
	})))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "ua-header")
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set(common.AccountHeader, "acc-header")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeJSON(t, resp.Body)
	assert.Equal(t, "ALLOW", out["decision"])
	assert.Equal(t, "OK", out["reason"])
	assert.Equal(t, "203.0.113.7", out["ip"])
	assert.Equal(t, "abcdef0123456789", out["fingerprint"])
}

func TestTrackClick_IgnoresForwardedHeadersWithoutTrustProxy(t *testing.T) {
	app, pipeline := newTrackApp(t, false)

	allow := decision.NewAllow(decision.ReasonOK)
	pipeline.EXPECT().
		Process(mock.Anything, mock.MatchedBy(func(raw *click.RawClick) bool {
			return raw.IP != "203.0.113.7"
		})).
		Return(&ingest.Result{Gate: gate.Result{Outcome: gate.OutcomePass}, Decision: &allow})

	req := httptest.NewRequest("POST", "/api/v1/track", bytes.NewReader(trackBody(t, map[string]interface{}{
		"session_id": "s-1",
	})))
	req.Header.Set("X-Forwarded-For", "203.0.113.7")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTrackClick_BlockIsReturned(t *testing.T) {
	app, pipeline := newTrackApp(t, true)

	block := decision.NewBlock(decision.ReasonFraudDeviceFrequency, decision.ScopeExact, "198.51.100.4")
	block.Message = "Blocked: Device fingerprint (abcdef01) seen too frequently (11 times)."
	pipeline.EXPECT().Process(mock.Anything, mock.Anything).Return(&ingest.Result{
		Gate:     gate.Result{Outcome: gate.OutcomePass},
		Decision: &block,
		Enqueued: true,
	})

	req := httptest.NewRequest("POST", "/api/v1/track", bytes.NewReader(trackBody(t, map[string]interface{}{
		"session_id": "s-2",
	})))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeJSON(t, resp.Body)
	assert.Equal(t, "BLOCK", out["decision"])
	assert.Equal(t, "EXACT", out["scope"])
	assert.Equal(t, "198.51.100.4", out["target"])
	assert.Equal(t, true, out["enqueued"])
	assert.Contains(t, out["message"], "seen too frequently")
}

func TestTrackClick_ChallengeReturns403(t *testing.T) {
	app, pipeline := newTrackApp(t, true)

	challenge := &gate.Challenge{
		Challenge:      "00ff",
		RequiredPrefix: "0000",
		Difficulty:     4,
		Token:          "tok",
		ExpiresAt:      time.Now().Add(time.Minute),
	}
	pipeline.EXPECT().Process(mock.Anything, mock.Anything).Return(&ingest.Result{
		Gate: gate.Result{Outcome: gate.OutcomeChallenge, Reason: gate.ReasonHoneypot, Challenge: challenge, Honeypot: true},
	})

	req := httptest.NewRequest("POST", "/api/v1/track", bytes.NewReader(trackBody(t, map[string]interface{}{
		"session_id": "s-3",
		"honeypot":   "filled",
	})))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	out := decodeJSON(t, resp.Body)
	assert.Equal(t, gate.ReasonHoneypot, out["reason"])
	chl, ok := out["challenge"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "0000", chl["required_prefix"])
	assert.Equal(t, "tok", chl["token"])
}

func TestTrackClick_RejectReturns403WithoutChallenge(t *testing.T) {
	app, pipeline := newTrackApp(t, true)

	pipeline.EXPECT().Process(mock.Anything, mock.Anything).Return(&ingest.Result{
		Gate: gate.Result{Outcome: gate.OutcomeReject, Reason: gate.ReasonInvalidSolution},
	})

	req := httptest.NewRequest("POST", "/api/v1/track", bytes.NewReader(trackBody(t, map[string]interface{}{
		"session_id": "s-4",
		"pow": map[string]interface{}{
			"challenge":       "00ff",
			"nonce":           "12",
			"required_prefix": "0000",
			"token":           "tok",
		},
	})))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	out := decodeJSON(t, resp.Body)
	assert.Equal(t, gate.ReasonInvalidSolution, out["reason"])
	assert.NotContains(t, out, "challenge")
}

func TestTrackClick_GzipBody(t *testing.T) {
	app, pipeline := newTrackApp(t, true)

	allow := decision.NewAllow(decision.ReasonOK)
	pipeline.EXPECT().
		Process(mock.Anything, mock.MatchedBy(func(raw *click.RawClick) bool {
			return raw.SessionID == "gz-1" && raw.Domain == "shop.example"
		})).
		Return(&ingest.Result{Gate: gate.Result{Outcome: gate.OutcomePass}, Decision: &allow})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(trackBody(t, map[string]interface{}{
		"session_id": "gz-1",
		"domain":     "shop.example",
	}))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest("POST", "/api/v1/track", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTrackClick_BadInput(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		encoding string
	}{
		{name: "invalid json", body: []byte(`{"session_id":`)},
		{name: "missing session", body: []byte(`{"screen_width":10}`)},
		{name: "negative dimension", body: []byte(`{"session_id":"s","screen_width":-1}`)},
		{name: "incomplete pow", body: []byte(`{"session_id":"s","pow":{"nonce":"1"}}`)},
		{name: "corrupt gzip", body: []byte("not gzip"), encoding: "gzip"},
		{name: "unknown encoding", body: []byte(`{"session_id":"s"}`), encoding: "compress"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTrackApp(t, true)
			req := httptest.NewRequest("POST", "/api/v1/track", bytes.NewReader(tt.body))
			if tt.encoding != "" {
				req.Header.Set("Content-Encoding", tt.encoding)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
