package connection

import (
	"context"

	"authapi/cache"
	"authapi/config"
	"authapi/logging"
)

// Cache picks the revocation-store backend. Redis is the default; without a
// configured address the process falls back to the in-memory adapter, which
// is only correct for a single instance.
func Cache(cfg *config.Config, logger logging.Logger) (cache.TokenCache, error) {
	if cfg.RedisAddr == "" {
		logger.Warn(context.Background(), "REDIS_ADDR not set, using in-memory token cache")
		return cache.NewMemoryCache(), nil
	}
	return cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}
