package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"planora-api/pkg/discord"
	"planora-api/pkg/encrypter"
	"planora-api/pkg/log"
	"planora-api/pkg/minio"
	"planora-api/pkg/redis"
	"planora-api/pkg/scope"
)

// Config holds the dependencies and settings of the HTTP server.
type Config struct {
	Port int
	Mode string

	DB           *sql.DB
	Redis        redis.IRedis
	Storage      minio.MinIO
	AvatarBucket string
	Encrypter    encrypter.Encrypter
	ScopeManager scope.Manager
	Discord      discord.IDiscord
}

// HTTPServer is the API server.
type HTTPServer struct {
	gin *gin.Engine
	l   log.Logger
	cfg Config
}

// New creates a new HTTPServer after validating its dependencies.
// Discord is optional, everything else is required.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.DB == nil {
		return nil, errors.New("database is required")
	}
	if cfg.Redis == nil {
		return nil, errors.New("redis is required")
	}
	if cfg.Storage == nil {
		return nil, errors.New("object storage is required")
	}
	if cfg.Encrypter == nil {
		return nil, errors.New("encrypter is required")
	}
	if cfg.ScopeManager == nil {
		return nil, errors.New("scope manager is required")
	}

	gin.SetMode(cfg.Mode)

	return &HTTPServer{
		gin: gin.New(),
		l:   l,
		cfg: cfg,
	}, nil
}
