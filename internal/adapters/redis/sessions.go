// Package redisad persists dialog sessions in redis as JSON with a TTL, for
// hosts that want conversations to survive process restarts.
package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"aurora_concierge/internal/adapters/observability"
	"aurora_concierge/internal/domain"
)

type SessionStore struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *SessionStore {
	return &SessionStore{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		ttl: ttl,
	}
}

func key(id string) string { return "session:" + id }

func (s *SessionStore) Get(ctx context.Context, id string) (domain.Session, error) {
	b, err := s.c.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		observability.ObserveSession("redis", "miss")
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}
	observability.ObserveSession("redis", "hit")
	var sess domain.Session
	return sess, json.Unmarshal(b, &sess)
}

func (s *SessionStore) Put(ctx context.Context, sess domain.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	observability.ObserveSession("redis", "put")
	return s.c.Set(ctx, key(sess.ID), b, s.ttl).Err()
}

func (s *SessionStore) Del(ctx context.Context, id string) error {
	observability.ObserveSession("redis", "del")
	return s.c.Del(ctx, key(id)).Err()
}
