package auth

import (
	"context"
	"sync"
	"time"

	"github.com/vforit/ticktrack/internal/shared/biztime"
)

// RevocationStore tracks token IDs (jti) that must be rejected even while
// the token itself is still cryptographically valid. Entries carry a TTL
// matching the token's remaining lifetime; after that the token is expired
// anyway and the entry can be dropped.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// MemoryRevocationStore keeps revoked token IDs in process memory. It is
// safe for concurrent use. Entries are swept lazily on write. Note that a
// multi-process deployment gets one store per process; revocations are not
// shared. Use the Redis-backed store for that.
type MemoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		entries: make(map[string]time.Time),
	}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.entries[jti] = biztime.NowUTC().Add(ttl)
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiry, ok := s.entries[jti]
	if !ok {
		return false, nil
	}
	return biztime.NowUTC().Before(expiry), nil
}

func (s *MemoryRevocationStore) sweepLocked() {
	now := biztime.NowUTC()
	for jti, expiry := range s.entries {
		if now.After(expiry) {
			delete(s.entries, jti)
		}
	}
}
