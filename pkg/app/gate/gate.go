package gate

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	DefaultDifficulty   = 4
	DefaultChallengeTTL = 5 * time.Minute
	maxDifficulty       = 16
)

const (
	ReasonHoneypot          = "honeypot"
	ReasonSolutionRequired  = "solution_required"
	ReasonMissingToken      = "missing_token"
	ReasonInvalidToken      = "invalid_token"
	ReasonExpiredToken      = "expired_token"
	ReasonSessionMismatch   = "session_mismatch"
	ReasonChallengeMismatch = "challenge_mismatch"
	ReasonPrefixMismatch    = "prefix_mismatch"
	ReasonInvalidSolution   = "invalid_solution"
)

var (
	ErrInvalidToken = errors.New("invalid challenge token")
	ErrExpiredToken = errors.New("expired challenge token")
)

type Config struct {
	Difficulty   int           `mapstructure:"pow_difficulty"`
	Required     bool          `mapstructure:"required"`
	ChallengeTTL time.Duration `mapstructure:"challenge_ttl"`
	Secret       string        `mapstructure:"secret"`
}

type Challenge struct {
	Challenge      string    `json:"challenge"`
	RequiredPrefix string    `json:"required_prefix"`
	Difficulty     int       `json:"difficulty"`
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type Outcome int

const (
	OutcomePass Outcome = iota
	OutcomeChallenge
	OutcomeReject
)

func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeChallenge:
		return "challenge"
	case OutcomeReject:
		return "reject"
	}
	return "unknown"
}

type Result struct {
	Outcome   Outcome
	Reason    string
	Challenge *Challenge
	Honeypot  bool
	PowPassed bool
}

//go:generate mockery --name=Gate --dir=. --output=./mocks --filename=gate_mock.go --case=underscore --with-expecter
type Gate interface {
	Issue(sessionID string) (*Challenge, error)
	Check(raw *click.RawClick) Result
	VerifySolution(sessionID string, solution *click.PowSolution) (bool, string)
}

type challengeClaims struct {
	Challenge string `json:"chl"`
	Prefix    string `json:"pfx"`
	jwt.RegisteredClaims
}

type gate struct {
	logger *logrus.Logger
	cfg    Config
	now    func() time.Time
}

func NewGate(logger *logrus.Logger, cfg Config) Gate {
	if cfg.Difficulty <= 0 {
		cfg.Difficulty = DefaultDifficulty
	}
	if cfg.Difficulty > maxDifficulty {
		cfg.Difficulty = maxDifficulty
	}
	if cfg.ChallengeTTL <= 0 {
		cfg.ChallengeTTL = DefaultChallengeTTL
	}
	return &gate{
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (g *gate) Issue(sessionID string) (*Challenge, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate challenge: %w", err)
	}
	now := g.now()
	c := &Challenge{
		Challenge:      hex.EncodeToString(buf),
		RequiredPrefix: requiredPrefix(g.cfg.Difficulty),
		Difficulty:     g.cfg.Difficulty,
		ExpiresAt:      now.Add(g.cfg.ChallengeTTL),
	}

	claims := &challengeClaims{
		Challenge: c.Challenge,
		Prefix:    c.RequiredPrefix,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(g.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign challenge: %w", err)
	}
	c.Token = token
	return c, nil
}

func (g *gate) Check(raw *click.RawClick) Result {
	if HasHoneypot(raw.Honeypot) {
		g.logger.WithFields(logrus.Fields{
			"session_id": raw.SessionID,
			"ip":         raw.IP,
		}).Warn("honeypot field filled, issuing challenge")
		return g.challenge(raw.SessionID, ReasonHoneypot, true)
	}

	if raw.PoW != nil {
		ok, reason := g.VerifySolution(raw.SessionID, raw.PoW)
		if !ok {
			g.logger.WithFields(logrus.Fields{
				"session_id": raw.SessionID,
				"reason":     reason,
			}).Warn("proof of work rejected")
			return Result{Outcome: OutcomeReject, Reason: reason}
		}
		return Result{Outcome: OutcomePass, PowPassed: true}
	}

	if g.cfg.Required {
		return g.challenge(raw.SessionID, ReasonSolutionRequired, false)
	}
	return Result{Outcome: OutcomePass}
}

// VerifySolution validates the challenge token and then the hash. The prefix
// bound in the token wins over whatever the client echoes back.
func (g *gate) VerifySolution(sessionID string, solution *click.PowSolution) (bool, string) {
	if solution == nil || solution.Token == "" {
		return false, ReasonMissingToken
	}
	claims, err := g.parse(solution.Token)
	if err != nil {
		if errors.Is(err, ErrExpiredToken) {
			return false, ReasonExpiredToken
		}
		return false, ReasonInvalidToken
	}
	if claims.Subject != sessionID {
		return false, ReasonSessionMismatch
	}
	if claims.Challenge != solution.Challenge {
		return false, ReasonChallengeMismatch
	}
	if solution.RequiredPrefix != "" && solution.RequiredPrefix != claims.Prefix {
		return false, ReasonPrefixMismatch
	}
	if !Verify(claims.Challenge, sessionID, solution.Nonce, claims.Prefix) {
		return false, ReasonInvalidSolution
	}
	return true, ""
}

func (g *gate) parse(token string) (*challengeClaims, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&challengeClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return []byte(g.cfg.Secret), nil
		},
		jwt.WithTimeFunc(g.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*challengeClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (g *gate) challenge(sessionID, reason string, honeypot bool) Result {
	c, err := g.Issue(sessionID)
	if err != nil {
		g.logger.WithError(err).Error("failed to issue challenge")
		return Result{Outcome: OutcomeReject, Reason: reason, Honeypot: honeypot}
	}
	return Result{Outcome: OutcomeChallenge, Reason: reason, Challenge: c, Honeypot: honeypot}
}
