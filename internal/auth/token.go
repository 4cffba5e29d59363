package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
)

// ErrInvalidToken is the single failure outcome for decoding. Malformed
// structure, a wrong or missing signature, and a different secret are
// indistinguishable to callers; there is no partial trust.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload carried by a session token. Tokens carry
// no expiry claim: liveness is decided by the session store alone, so
// logout and administrative revocation work on otherwise "fresh" tokens.
type Claims struct {
	UserID string        `json:"id"`
	Name   string        `json:"name"`
	Email  string        `json:"email"`
	Roles  []domain.Role `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the decoded role set contains the tag.
func (c *Claims) HasRole(role domain.Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenCodec signs and verifies session tokens with a process-wide secret.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec builds a codec over the shared signing secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Encode signs the user's identity claims into a session token.
func (tc *TokenCodec) Encode(user *domain.User) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Roles:  user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
			// Unique per mint so two logins in the same second still
			// produce distinct token strings.
			ID: uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Decode verifies the signature and returns the claims. Every failure mode
// collapses to ErrInvalidToken.
func (tc *TokenCodec) Decode(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return tc.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
