package app

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"aurora_concierge/internal/domain"
	"aurora_concierge/internal/engine"
)

// Concierge runs dialog turns against persisted sessions. Turns on the same
// session are serialized with a per-session semaphore: the slot-merge policy
// is not commutative, so two rapid submissions must not interleave.
type Concierge struct {
	store domain.SessionStore
	eng   *engine.Engine

	mu    sync.Mutex
	locks map[string]*semaphore.Weighted
}

func NewConcierge(store domain.SessionStore, eng *engine.Engine) *Concierge {
	return &Concierge{store: store, eng: eng, locks: map[string]*semaphore.Weighted{}}
}

func (c *Concierge) lockFor(id string) *semaphore.Weighted {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.locks[id]; ok {
		return l
	}
	l := semaphore.NewWeighted(1)
	c.locks[id] = l
	return l
}

// Chat processes one message. An empty sessionID opens a new session; an
// empty message returns the greeting without consuming a turn. The mutated
// session is saved back to the store and returned alongside the reply.
func (c *Concierge) Chat(ctx context.Context, sessionID, message string) (domain.Session, domain.Reply, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	lock := c.lockFor(sessionID)
	if err := lock.Acquire(ctx, 1); err != nil {
		return domain.Session{}, domain.Reply{}, err
	}
	defer lock.Release(1)

	sess, err := c.store.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		sess = domain.Session{ID: sessionID}
	} else if err != nil {
		return domain.Session{}, domain.Reply{}, err
	}

	var reply domain.Reply
	if message == "" {
		reply = c.eng.Greet()
	} else {
		reply = c.eng.HandleTurn(&sess, message)
	}

	if err := c.store.Put(ctx, sess); err != nil {
		return domain.Session{}, domain.Reply{}, err
	}
	return sess, reply, nil
}

// End discards a session.
func (c *Concierge) End(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	delete(c.locks, sessionID)
	c.mu.Unlock()
	return c.store.Del(ctx, sessionID)
}
