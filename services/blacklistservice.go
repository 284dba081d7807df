package services

import (
	"context"
	"errors"
	"time"

	"authapi/cache"
)

const (
	blacklistKeyPrefix = "blacklist:"
	blacklistSentinel  = "revoked"
)

// TokenBlacklistService records revoked access tokens in the shared cache.
// Entries carry the token's remaining validity as TTL, so a revocation never
// outlives the token it revokes.
type TokenBlacklistService struct {
	cache cache.TokenCache
}

func NewTokenBlacklistService(c cache.TokenCache) *TokenBlacklistService {
	return &TokenBlacklistService{cache: c}
}

// Blacklist stores the sentinel for the literal token string. A non-positive
// TTL is a no-op: an already-expired token needs no entry.
func (s *TokenBlacklistService) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, blacklistKeyPrefix+token, blacklistSentinel, ttl)
}

// IsBlacklisted reports whether the token has been revoked. A cache miss
// means "not revoked"; never-seen and revocation-lapsed are indistinguishable
// here and mean the same thing.
func (s *TokenBlacklistService) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	_, err := s.cache.Get(ctx, blacklistKeyPrefix+token)
	if errors.Is(err, cache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
