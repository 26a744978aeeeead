package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer signs session ids into the value carried by the session cookie.
// Tokens have no expiry: the cookie lives as long as the browser session.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates a new issuer with the given secret.
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// NewID generates a fresh opaque session id.
func NewID() string {
	return uuid.New().String()
}

// Issue returns a signed token whose jti is id.
func (s *TokenIssuer) Issue(id string) (string, error) {
	claims := &jwt.RegisteredClaims{
		ID:       id,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Key returns the verification key for the signing method used by Issue.
func (s *TokenIssuer) Key() []byte {
	return s.secret
}

// idFromToken extracts the session id from a verified token.
func idFromToken(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		return "", errors.New("malformed session id")
	}
	return claims.ID, nil
}
