package session

import "context"

// Store persists the current session across client restarts.
//
// Get returns (nil, nil) when no complete session is stored; Set and Clear
// are idempotent. Implementations must write and remove all session slots
// atomically so readers never observe a token without a profile.
type Store interface {
	Get(ctx context.Context) (*Session, error)
	Set(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}
