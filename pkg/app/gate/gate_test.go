package gate

import (
	"strconv"
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solve(t *testing.T, challenge, sessionID, prefix string) string {
	t.Helper()
	for i := 0; i < 1_000_000; i++ {
		nonce := strconv.Itoa(i)
		if Verify(challenge, sessionID, nonce, prefix) {
			return nonce
		}
	}
	t.Fatal("no nonce found")
	return ""
}

func newTestGate(cfg Config) *gate {
	cfg.Secret = "test-secret"
	return NewGate(logrus.New(), cfg).(*gate)
}

func TestHasHoneypot(t *testing.T) {
	assert.False(t, HasHoneypot(""))
	assert.False(t, HasHoneypot("   \t\n"))
	assert.True(t, HasHoneypot("x"))
	assert.True(t, HasHoneypot("  bot filled this "))
}

func TestVerify_IsPureAndSessionBound(t *testing.T) {
	nonce := solve(t, "abc", "session-a", "00")

	for i := 0; i < 3; i++ {
		assert.True(t, Verify("abc", "session-a", nonce, "00"))
	}
	// a nonce good for one session says nothing about another
	found := false
	for _, s := range []string{"session-b", "session-c", "session-d", "session-e"} {
		if !Verify("abc", s, nonce, "00") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestVerify_EmptyArguments(t *testing.T) {
	assert.False(t, Verify("", "s", "1", "0"))
	assert.False(t, Verify("c", "", "1", "0"))
	assert.False(t, Verify("c", "s", "", "0"))
	assert.False(t, Verify("c", "s", "1", ""))
}

func TestGate_IssueUsesDifficulty(t *testing.T) {
	g := newTestGate(Config{Difficulty: 3})
	c, err := g.Issue("sess")
	require.NoError(t, err)
	assert.Equal(t, "000", c.RequiredPrefix)
	assert.Equal(t, 3, c.Difficulty)
	assert.Len(t, c.Challenge, 32)
	assert.NotEmpty(t, c.Token)

	def := newTestGate(Config{})
	c, err = def.Issue("sess")
	require.NoError(t, err)
	assert.Equal(t, "0000", c.RequiredPrefix)
}

func TestGate_CheckHoneypot(t *testing.T) {
	g := newTestGate(Config{Difficulty: 2})
	res := g.Check(&click.RawClick{SessionID: "sess", Honeypot: "filled"})
	assert.Equal(t, OutcomeChallenge, res.Outcome)
	assert.Equal(t, ReasonHoneypot, res.Reason)
	assert.True(t, res.Honeypot)
	require.NotNil(t, res.Challenge)
	assert.Equal(t, "00", res.Challenge.RequiredPrefix)
}

func TestGate_CheckValidSolution(t *testing.T) {
	g := newTestGate(Config{Difficulty: 2})
	c, err := g.Issue("sess")
	require.NoError(t, err)
	nonce := solve(t, c.Challenge, "sess", c.RequiredPrefix)

	res := g.Check(&click.RawClick{
		SessionID: "sess",
		PoW:       &click.PowSolution{Challenge: c.Challenge, Nonce: nonce, RequiredPrefix: c.RequiredPrefix, Token: c.Token},
	})
	assert.Equal(t, OutcomePass, res.Outcome)
	assert.True(t, res.PowPassed)
}

func TestGate_CheckRejections(t *testing.T) {
	g := newTestGate(Config{Difficulty: 2})
	c, err := g.Issue("sess")
	require.NoError(t, err)
	nonce := solve(t, c.Challenge, "sess", c.RequiredPrefix)

	other, err := g.Issue("sess")
	require.NoError(t, err)

	tests := []struct {
		name      string
		sessionID string
		solution  *click.PowSolution
		reason    string
	}{
		{"missing token", "sess", &click.PowSolution{Challenge: c.Challenge, Nonce: nonce}, ReasonMissingToken},
		{"garbage token", "sess", &click.PowSolution{Challenge: c.Challenge, Nonce: nonce, Token: "x.y.z"}, ReasonInvalidToken},
		{"other session", "sess-2", &click.PowSolution{Challenge: c.Challenge, Nonce: nonce, Token: c.Token}, ReasonSessionMismatch},
		{"swapped challenge", "sess", &click.PowSolution{Challenge: c.Challenge, Nonce: nonce, Token: other.Token}, ReasonChallengeMismatch},
		{"easier prefix", "sess", &click.PowSolution{Challenge: c.Challenge, Nonce: nonce, RequiredPrefix: "0", Token: c.Token}, ReasonPrefixMismatch},
		{"wrong nonce", "sess", &click.PowSolution{Challenge: c.Challenge, Nonce: nonce + "x", Token: c.Token}, ReasonInvalidSolution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.reason == ReasonInvalidSolution && Verify(c.Challenge, "sess", tt.solution.Nonce, c.RequiredPrefix) {
				t.Skip("mutated nonce happens to solve the challenge")
			}
			res := g.Check(&click.RawClick{SessionID: tt.sessionID, PoW: tt.solution})
			assert.Equal(t, OutcomeReject, res.Outcome)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestGate_ExpiredToken(t *testing.T) {
	g := newTestGate(Config{Difficulty: 1, ChallengeTTL: time.Minute})
	c, err := g.Issue("sess")
	require.NoError(t, err)
	nonce := solve(t, c.Challenge, "sess", c.RequiredPrefix)

	g.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	ok, reason := g.VerifySolution("sess", &click.PowSolution{Challenge: c.Challenge, Nonce: nonce, Token: c.Token})
	assert.False(t, ok)
	assert.Equal(t, ReasonExpiredToken, reason)
}

func TestGate_TokenFromOtherSecret(t *testing.T) {
	issuer := NewGate(logrus.New(), Config{Difficulty: 1, Secret: "one"})
	verifier := NewGate(logrus.New(), Config{Difficulty: 1, Secret: "two"})
	c, err := issuer.Issue("sess")
	require.NoError(t, err)
	nonce := solve(t, c.Challenge, "sess", c.RequiredPrefix)

	ok, reason := verifier.VerifySolution("sess", &click.PowSolution{Challenge: c.Challenge, Nonce: nonce, Token: c.Token})
	assert.False(t, ok)
	assert.Equal(t, ReasonInvalidToken, reason)
}

func TestGate_Required(t *testing.T) {
	optional := newTestGate(Config{Difficulty: 2})
	assert.Equal(t, OutcomePass, optional.Check(&click.RawClick{SessionID: "sess"}).Outcome)

	required := newTestGate(Config{Difficulty: 2, Required: true})
	res := required.Check(&click.RawClick{SessionID: "sess"})
	assert.Equal(t, OutcomeChallenge, res.Outcome)
	assert.Equal(t, ReasonSolutionRequired, res.Reason)
	assert.False(t, res.Honeypot)
	assert.NotNil(t, res.Challenge)
}
