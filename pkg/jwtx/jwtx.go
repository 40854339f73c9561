// Package jwtx signs and verifies the JWT session tokens issued after a
// successful login. Tokens are HMAC-signed and carry the user id as the
// subject plus a session id (sid) that references a revocable session row.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrExpiredToken = errors.New("jwtx: token expired")
)

// SessionClaims are the claims embedded in a session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Verifier validates a raw token string and returns its claims.
type Verifier interface {
	Verify(raw string) (SessionClaims, error)
}

// Signer mints and verifies HS256 session tokens.
type Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Sign issues a session token for the given user and session ids.
func (s *Signer) Sign(userID, sessionID string, now time.Time) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Verify parses and validates a raw session token. The signing method,
// issuer and expiry are all checked.
func (s *Signer) Verify(raw string) (SessionClaims, error) {
	var claims SessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.Secret, nil
		},
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SessionClaims{}, ErrExpiredToken
		}
		return SessionClaims{}, ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" || claims.SessionID == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	return claims, nil
}
