package common

import (
	"context"
	"time"
)

// TokenStore remembers revoked token ids until the token would have expired anyway
type TokenStore interface {
	// Revoke marks tokenID as unusable for ttl
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether tokenID was revoked and has not aged out
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
