package core

import (
	"context"
	"time"

	"github.com/deskhub/booking-api/internal/domain/auth"
)

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	// Set stores a value in the cache with the given key and TTL.
	// If TTL is 0, the key will not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value from the cache by key.
	// Returns nil if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key from the cache.
	// Returns true if the key was deleted, false if it didn't exist.
	Delete(ctx context.Context, key string) (bool, error)

	// DeleteByPrefix removes all keys sharing the given prefix. Used to
	// invalidate cached listing pages after a write.
	DeleteByPrefix(ctx context.Context, prefix string) error

	// Health checks the health of the cache connection.
	Health(ctx context.Context) error
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenCodec issues and parses signed access tokens.
type TokenCodec interface {
	Issue(subject string, roles []string, now time.Time) (string, error)
	Parse(raw string, now time.Time) (*auth.Claims, error)
	TTL() time.Duration
}
