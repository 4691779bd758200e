// Package auth verifies bearer tokens against the JWT secret and the sessions table.
package auth

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/golang-jwt/jwt/v5"

	"event_hotels/internal/domain"
)

// ErrUnauthorized covers every reason a token is refused.
var ErrUnauthorized = errors.New("unauthorized")

type Authenticator struct {
	secret   []byte
	sessions domain.SessionRepository
}

func New(secret string, sessions domain.SessionRepository) *Authenticator {
	return &Authenticator{secret: []byte(secret), sessions: sessions}
}

// Authenticate returns the userId claim of a valid HMAC-signed token that still
// has a session row. Store failures are returned wrapped, not as ErrUnauthorized.
func (a *Authenticator) Authenticate(ctx context.Context, raw string) (int64, error) {
	if raw == "" {
		return 0, ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	userID, ok := userIDClaim(claims)
	if !ok {
		return 0, fmt.Errorf("%w: missing userId claim", ErrUnauthorized)
	}

	if _, err := a.sessions.FindSessionByToken(ctx, raw); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, fmt.Errorf("%w: no session for token", ErrUnauthorized)
		}
		return 0, fmt.Errorf("find session: %w", err)
	}
	return userID, nil
}

// JSON numbers decode as float64; only positive whole numbers are ids.
func userIDClaim(c jwt.MapClaims) (int64, bool) {
	f, ok := c["userId"].(float64)
	if !ok || f < 1 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

type ctxKey struct{}

func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func UserIDFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok
}
