package fingerprint_test

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/fingerprint"
	"github.com/gofiber/fiber/v2"
)

func baseClick() click.RawClick {
	return click.RawClick{
		UserAgent:    "Mozilla/5.0",
		Language:     "en-US",
		Timezone:     "Europe/Madrid",
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		Canvas:       "canvas-hash",
		Audio:        "ignored",
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a := baseClick()
	b := baseClick()
	if fingerprint.Compute(&a) != fingerprint.Compute(&b) {
		t.Fatal("expected identical fingerprints for identical inputs")
	}
}

func TestCompute_CanonicalString(t *testing.T) {
	raw := baseClick()
	sum := sha256.Sum256([]byte("Mozilla/5.0|en-US|Europe/Madrid|1920|1080|canvas-hash"))
	want := hex.EncodeToString(sum[:])
	if got := fingerprint.Compute(&raw).String(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestCompute_MissingFieldsAreEmpty(t *testing.T) {
	raw := click.RawClick{UserAgent: "ua"}
	sum := sha256.Sum256([]byte("ua|||||"))
	want := hex.EncodeToString(sum[:])
	if got := fingerprint.Compute(&raw).String(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestCompute_ChangesWithEachSignal(t *testing.T) {
	base := baseClick()
	ref := fingerprint.Compute(&base)

	mutations := map[string]func(c *click.RawClick){
		"user agent": func(c *click.RawClick) { c.UserAgent = "curl/8.0" },
		"language":   func(c *click.RawClick) { c.Language = "es-ES" },
		"timezone":   func(c *click.RawClick) { c.Timezone = "UTC" },
		"width":      func(c *click.RawClick) { c.ScreenWidth = 1280 },
		"height":     func(c *click.RawClick) { c.ScreenHeight = 720 },
		"canvas":     func(c *click.RawClick) { c.Canvas = "other" },
	}
	for name, mutate := range mutations {
		c := baseClick()
		mutate(&c)
		if fingerprint.Compute(&c) == ref {
			t.Errorf("expected fingerprint to change when %s changes", name)
		}
	}

	c := baseClick()
	c.Audio = "different"
	if fingerprint.Compute(&c) != ref {
		t.Error("audio signal must not take part in the fingerprint")
	}
}

func TestParseUserAgent(t *testing.T) {
	info := fingerprint.ParseUserAgent(
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"es-ES,es;q=0.9",
	)
	if info.Device != "Computer" {
		t.Errorf("expected Computer, got %s", info.Device)
	}
	if info.Locale != "es-ES" {
		t.Errorf("expected es-ES locale, got %s", info.Locale)
	}
}

func TestClientIP(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(fingerprint.ClientIP(c))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "203.0.113.7" {
		t.Errorf("expected forwarded ip, got %q", string(body))
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Real-IP", "not-an-ip")
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	if string(body) == "not-an-ip" || string(body) == "" {
		t.Errorf("expected connection ip fallback, got %q", string(body))
	}
}
