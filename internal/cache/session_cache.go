package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/teerthankarjewels/storefront_api/internal/models"
)

// SessionCache persists gateway sessions in Redis. A session holds the
// backend token plus the cached user profile, keyed by session ID; it is
// the server-side replacement for the browser's persisted token/user pair.
type SessionCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewSessionCache creates a SessionCache with the given session lifetime.
func NewSessionCache(redis *RedisClient, ttl time.Duration) *SessionCache {
	return &SessionCache{redis: redis, ttl: ttl}
}

func (c *SessionCache) key(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save stores the session, resetting its TTL.
func (c *SessionCache) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := c.redis.Set(ctx, c.key(session.ID), string(data), c.ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID. A missing or expired session returns
// (nil, nil); callers translate that into an auth failure.
func (c *SessionCache) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := c.redis.Get(ctx, c.key(sessionID))
	if err != nil {
		if IsMiss(err) {
			return nil, nil
		}
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Touch extends the session's TTL on activity.
func (c *SessionCache) Touch(ctx context.Context, sessionID string) error {
	return c.redis.Expire(ctx, c.key(sessionID), c.ttl)
}

// Delete removes the session.
func (c *SessionCache) Delete(ctx context.Context, sessionID string) error {
	return c.redis.Delete(ctx, c.key(sessionID))
}
