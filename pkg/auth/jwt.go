// Package auth implements platform authentication: bcrypt password
// hashing and HS256 bearer tokens. Tokens carry only the user id in the
// subject claim; everything else is looked up per request.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, wrong algorithm, or expiry. Callers translate it to
// a 401 without leaking which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer signs and verifies access tokens with a shared secret.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewTokenIssuer panics on an empty secret. Refusing to sign with ""
// at startup beats minting forgeable tokens at runtime.
func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	if secret == "" {
		panic("token secret cannot be empty")
	}
	return &TokenIssuer{secret: []byte(secret), expiry: expiry}
}

// Issue mints a token for the given user id, expiring after the
// configured lifetime.
func (i *TokenIssuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks the token's signature and expiry and returns the user
// id from the subject claim.
func (i *TokenIssuer) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
