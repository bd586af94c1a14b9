package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenLifetime extracts the remaining lifetime, in whole seconds, from
// a JWT's exp claim. The token was just issued by the provider we
// ourselves called, so the claims are read without signature
// verification; the value only feeds the advisory expiresIn field.
// Returns 0 when the token is not a JWT or carries no usable expiry.
func tokenLifetime(raw string) int {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return 0
	}
	if claims.ExpiresAt == nil {
		return 0
	}
	secs := int(time.Until(claims.ExpiresAt.Time).Seconds())
	if secs <= 0 {
		return 0
	}
	return secs
}
