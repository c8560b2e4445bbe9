// Package token issues and validates the signed bearer tokens that carry a
// user's identity between requests.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flowpad-app/flowpad-backend/internal/auth/domain"
)

// Codec signs and verifies HS256 tokens. The secret and lifetime are fixed
// at construction from process configuration.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token whose subject is the user id, valid from now
// until now+ttl.
func (c *Codec) Issue(userID int) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Validate checks the signature and claims of tokenString and returns the
// user id from its subject. Expiry is checked once, by the jwt library
// against the token's own exp claim.
func (c *Codec) Validate(tokenString string) (int, error) {
	claims := &jwt.RegisteredClaims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.ErrTokenExpired
		}
		return 0, domain.ErrInvalidToken
	}

	if !tok.Valid {
		return 0, domain.ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, domain.ErrInvalidToken
	}

	return userID, nil
}
