package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PeekExpiry extracts the expiry claim from a JWT bearer token without
// verifying its signature. Verification is the server's job; the client
// only peeks so it can discard a token that is already dead. Returns false
// when the token is not a JWT or carries no expiry, in which case it is
// treated as opaque and kept.
func PeekExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
