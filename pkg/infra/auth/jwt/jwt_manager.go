package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrMissingScope = errors.New("token carries no account")
)

const defaultTokenTTL = 24 * time.Hour

//go:generate mockery --name=Manager --dir=. --output=mocks/ --filename=jwt_manager_mock.go --case=underscore --with-expecter
type (
	Manager interface {
		CreateToken(account, identity string) (string, error)
		ValidateToken(tokenString string) error
		DecodeToken(tokenString string) (*Claims, error)
	}
	manager struct {
		secret []byte
		ttl    time.Duration
		now    func() time.Time
	}
)

// NewJwtManager signs operator and websocket tokens with HS256.
func NewJwtManager(secret string, ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Claims binds a token to an advertiser account. The subject is the user
// identity notifications can be addressed to.
type Claims struct {
	Account string `json:"account"`
	jwt.RegisteredClaims
}

func (m *manager) CreateToken(account, identity string) (string, error) {
	if account == "" {
		return "", ErrMissingScope
	}
	now := m.now()
	claims := &Claims{
		Account: account,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *manager) ValidateToken(tokenString string) error {
	_, err := m.DecodeToken(tokenString)
	return err
}

func (m *manager) DecodeToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Account == "" {
		return nil, ErrMissingScope
	}
	return claims, nil
}
