// Package token implements the signed identity token codec. Tokens are
// HS256 JWTs carrying the principal's email, valid for a fixed window.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: expired, malformed,
// or bad signature. Callers are deliberately not told which.
var ErrInvalidToken = errors.New("token invalid")

// Claims is the decoded identity carried by a verified token.
type Claims struct {
	Email string
}

// Codec signs and verifies identity tokens with a shared secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// New creates a codec signing with secret and issuing tokens valid for ttl.
func New(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for the given email.
func (c *Codec) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString(c.secret)
}

// Verify validates signature and expiry and returns the decoded identity.
func (c *Codec) Verify(raw string) (Claims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	email, _ := mapClaims["sub"].(string)
	if email == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{Email: email}, nil
}
