package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotAToken = errors.New("not a parseable JWT")

// TokenInfo is what the client can learn from a bearer token without the
// signing key. The backend owns verification; nothing here is trusted for
// authorization, it only informs session bookkeeping.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Inspect reads a JWT's registered claims without verifying the signature.
func Inspect(token string) (*TokenInfo, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, ErrNotAToken
	}

	info := &TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	return info, nil
}

// Expiry returns the token's exp claim, reporting false when the token is
// not a JWT or carries no expiry.
func Expiry(token string) (time.Time, bool) {
	info, err := Inspect(token)
	if err != nil || info.ExpiresAt.IsZero() {
		return time.Time{}, false
	}
	return info.ExpiresAt, true
}
