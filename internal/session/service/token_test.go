package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return raw
}

func TestTokenLifetime(t *testing.T) {
	t.Run("future expiry", func(t *testing.T) {
		raw := signedToken(t, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Minute)),
		})
		assert.InDelta(t, 600, tokenLifetime(raw), 5)
	})

	t.Run("expired token", func(t *testing.T) {
		raw := signedToken(t, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})
		assert.Zero(t, tokenLifetime(raw))
	})

	t.Run("no exp claim", func(t *testing.T) {
		raw := signedToken(t, jwt.RegisteredClaims{Subject: "12345678900"})
		assert.Zero(t, tokenLifetime(raw))
	})

	t.Run("not a jwt", func(t *testing.T) {
		assert.Zero(t, tokenLifetime("opaque-token"))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Zero(t, tokenLifetime(""))
	})
}
