// Package auth inspects stored bearer tokens client-side. Tokens are
// parsed without signature verification: verification is the server's job,
// the client only surfaces claims for display and for warning about
// expired credentials before a doomed request.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the claim set the client cares about.
type Identity struct {
	Subject string
	Email   string
	Expires time.Time // zero when the token carries no exp claim
}

var ErrNoToken = errors.New("no token")

// ParseIdentity extracts claims from a stored bearer token.
func ParseIdentity(token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrNoToken
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	var id Identity
	if sub, err := claims.GetSubject(); err == nil {
		id.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.Expires = exp.Time
	}
	return id, nil
}

// Expired reports whether the token's exp claim has passed. Tokens without
// an exp claim never report expired.
func (i Identity) Expired(now time.Time) bool {
	return !i.Expires.IsZero() && now.After(i.Expires)
}
