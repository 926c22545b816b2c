// Package auth signs and verifies the bearer tokens issued at login.
// Tokens expire seven days after issuance; expiry is the only
// invalidation mechanism, there is no revocation list.
package auth

import (
	"context"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token for the given user.
func SignToken(secret string, userID int64) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// ParseToken validates a token string and returns the user id it carries.
func ParseToken(secret, tokenStr string) (int64, error) {
	if secret == "" {
		return 0, errors.New("jwt secret is empty")
	}
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || c.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return c.UserID, nil
}

type userIDKey struct{}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext retrieves the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
