package redis

import (
	"context"
	"time"

	"planora-api/internal/auth"
	"planora-api/pkg/log"
	pkgRedis "planora-api/pkg/redis"
)

const revokedKeyPrefix = "auth:revoked:"

type implRevoker struct {
	l     log.Logger
	cache pkgRedis.IRedis
}

// New creates a Redis backed token revocation list.
func New(l log.Logger, cache pkgRedis.IRedis) auth.Revoker {
	return &implRevoker{
		l:     l,
		cache: cache,
	}
}

func (r implRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return r.cache.Set(ctx, revokedKeyPrefix+jti, "1", ttl)
}

func (r implRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return r.cache.Exists(ctx, revokedKeyPrefix+jti)
}
