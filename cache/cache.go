// Package cache provides the key/expiry store the revocation layer sits on.
// Two adapters exist: Redis for shared deployments and an in-process map for
// single-node runs and tests. Callers only see this interface.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or has expired.
var ErrCacheMiss = errors.New("cache: key not found")

type TokenCache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}
