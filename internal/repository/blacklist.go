package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "blacklist:"

// TokenBlacklist records tokens revoked before their natural expiry.
type TokenBlacklist interface {
	// Revoke marks the token as revoked until expiresAt. Revoking an
	// already-expired token is a no-op; revoking twice is idempotent.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	// IsRevoked reports whether the token is currently revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type redisTokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist creates a Redis-backed TokenBlacklist. Entries carry a
// key TTL equal to the token's remaining lifetime, so Redis expires them
// exactly when verification would start rejecting the token anyway.
func NewTokenBlacklist(client *redis.Client) TokenBlacklist {
	return &redisTokenBlacklist{client: client}
}

func (b *redisTokenBlacklist) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (b *redisTokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return n > 0, nil
}
