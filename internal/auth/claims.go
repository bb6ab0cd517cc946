package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of the TUNG access token payload the client cares
// about. Tokens are decoded without signature verification: the backend is
// the authority, the client only needs identity and expiry for display and
// refresh decisions.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

func DecodeClaims(token string) (*Claims, error) {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	claims := &Claims{}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if role, ok := mapClaims["rol"].(string); ok {
		claims.Role = role
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

// Expired reports whether the token's exp claim is at or before now. Tokens
// without an exp claim, and tokens that fail to decode, count as expired.
func Expired(token string, now time.Time) bool {
	claims, err := DecodeClaims(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt.IsZero() {
		return true
	}
	return !claims.ExpiresAt.After(now)
}
