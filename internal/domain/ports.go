package domain

import (
	"context"
	"errors"
)

// Retriever ranks knowledge documents against a free-text query, best first.
// Implementations return only documents above their relevance floor, so the
// result may be shorter than topK or empty.
type Retriever interface {
	Search(query string, topK int) []KnowledgeDocument
}

// Quoter is the pricing/availability collaborator. It must be deterministic
// for identical inputs. roomType is a catalog room name or RoomAny.
type Quoter interface {
	Quote(roomType, checkIn, checkOut string, guests int) QuoteResult
}

// ErrSessionNotFound is returned by SessionStore.Get for unknown IDs.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists sessions between turns on behalf of the host.
type SessionStore interface {
	Get(ctx context.Context, id string) (Session, error)
	Put(ctx context.Context, s Session) error
	Del(ctx context.Context, id string) error
}
