package common

import (
	"context"
	"time"

	"airport-booking/concourse/internal/constants"

	"github.com/patrickmn/go-cache"
)

// MemoryTokenStore is the in-process TokenStore used when Redis is disabled.
// Revocations do not survive a restart and are not shared between replicas.
type MemoryTokenStore struct {
	cache *cache.Cache
}

// Ensure MemoryTokenStore implements TokenStore
var _ TokenStore = (*MemoryTokenStore)(nil)

func NewMemoryTokenStore(cleanUpInterval time.Duration) *MemoryTokenStore {
	return &MemoryTokenStore{cache: cache.New(cache.NoExpiration, cleanUpInterval)}
}

func (m *MemoryTokenStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.cache.Set(revokedKey(tokenID), struct{}{}, ttl)
	return nil
}

func (m *MemoryTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, found := m.cache.Get(revokedKey(tokenID))
	return found, nil
}

// Close is a no-op for the in-memory store
func (m *MemoryTokenStore) Close() error {
	return nil
}

func revokedKey(tokenID string) string {
	return string(constants.CachePrefixRevokedToken) + tokenID
}
