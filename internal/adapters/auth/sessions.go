package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog/log"

	"event_hotels/internal/domain"
)

// CachedSessions is a read-through cache in front of a SessionRepository.
// Only found sessions are cached, so a new login is visible at once; a deleted
// session may still pass for up to ttl.
type CachedSessions struct {
	next  domain.SessionRepository
	cache domain.Cache
	ttl   time.Duration
}

func NewCachedSessions(next domain.SessionRepository, cache domain.Cache, ttl time.Duration) *CachedSessions {
	return &CachedSessions{next: next, cache: cache, ttl: ttl}
}

func (c *CachedSessions) FindSessionByToken(ctx context.Context, token string) (domain.Session, error) {
	key := sessionKey(token)

	var s domain.Session
	ok, err := c.cache.Get(ctx, key, &s)
	if err != nil {
		log.Warn().Err(err).Msg("session cache get failed")
	}
	if ok && s.Token == token {
		return s, nil
	}

	s, err = c.next.FindSessionByToken(ctx, token)
	if err != nil {
		return domain.Session{}, err
	}
	if err := c.cache.Set(ctx, key, s, c.ttl); err != nil {
		log.Warn().Err(err).Msg("session cache set failed")
	}
	return s, nil
}

func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:])
}
