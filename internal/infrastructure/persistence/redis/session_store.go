package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	domainErrors "github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/domain/session"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

// SessionStore keeps browsing sessions (and their carts) in Redis under a
// TTL. Each save refreshes the TTL so an active session stays alive.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

func NewSessionStore(conn *Connection, ttl time.Duration, log *logger.Logger) *SessionStore {
	return &SessionStore{
		client: conn.GetClient(),
		ttl:    ttl,
		log:    log,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *SessionStore) SaveSession(ctx context.Context, sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sess.ID), data, s.ttl).Err()
}

func (s *SessionStore) GetSession(ctx context.Context, id string) (*session.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domainErrors.ErrSessionNotFound
		}
		return nil, domainErrors.NewRemoteError("get session", err)
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Error("Failed to decode stored session", "session_id", id, "error", err.Error())
		return nil, domainErrors.ErrSessionNotFound
	}

	return &sess, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
