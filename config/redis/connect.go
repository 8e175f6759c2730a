package redis

import (
	"planora-api/config"
	pkgredis "planora-api/pkg/redis"
)

// Connect builds a Redis client from the app configuration and verifies
// the connection.
func Connect(cfg config.RedisConfig) (pkgredis.IRedis, error) {
	return pkgredis.New(pkgredis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
