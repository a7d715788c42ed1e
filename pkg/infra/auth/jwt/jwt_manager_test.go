package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTokenWithSecret(secret string, claims jwtlib.Claims) (string, error) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func TestCreateToken_AndDecode_Success(t *testing.T) {
	mgr := NewJwtManager("test-secret", time.Hour)

	token, err := mgr.CreateToken("123-456-7890", "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, mgr.ValidateToken(token))

	claims, err := mgr.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "123-456-7890", claims.Account)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestCreateToken_RequiresAccount(t *testing.T) {
	mgr := NewJwtManager("test-secret", time.Hour)
	_, err := mgr.CreateToken("", "user-1")
	assert.ErrorIs(t, err, ErrMissingScope)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	claims := &Claims{Account: "acc", RegisteredClaims: jwtlib.RegisteredClaims{IssuedAt: jwtlib.NewNumericDate(time.Now())}}
	signed, err := signTokenWithSecret("other-secret", claims)
	require.NoError(t, err)

	mgr := NewJwtManager("test-secret", time.Hour)
	assert.Equal(t, ErrInvalidToken, mgr.ValidateToken(signed))
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "expire-secret"
	claims := &Claims{Account: "acc", RegisteredClaims: jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
	}}
	signed, err := signTokenWithSecret(secret, claims)
	require.NoError(t, err)

	mgr := NewJwtManager(secret, time.Hour)
	assert.Equal(t, ErrExpiredToken, mgr.ValidateToken(signed))
}

func TestDecodeToken_MissingAccount(t *testing.T) {
	secret := "scope-secret"
	signed, err := signTokenWithSecret(secret, &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	require.NoError(t, err)

	mgr := NewJwtManager(secret, time.Hour)
	_, err = mgr.DecodeToken(signed)
	assert.ErrorIs(t, err, ErrMissingScope)
}

func TestDecodeToken_Malformed(t *testing.T) {
	mgr := NewJwtManager("test-secret", time.Hour)
	_, err := mgr.DecodeToken("not.a.token")
	assert.Equal(t, ErrInvalidToken, err)
}
