package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config aggregates every runtime setting of the API, parsed from the
// environment.
type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	MinIO     MinIOConfig
	JWT       JWTConfig
	Discord   DiscordConfig
	Encrypter EncrypterConfig
}

type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" envDefault:"8080"`
	Mode string `env:"GIN_MODE" envDefault:"debug"`
}

type LoggerConfig struct {
	Level        string `env:"LOG_LEVEL" envDefault:"debug"`
	Mode         string `env:"LOG_MODE" envDefault:"development"`
	Encoding     string `env:"LOG_ENCODING" envDefault:"console"`
	ColorEnabled bool   `env:"LOG_COLOR_ENABLED" envDefault:"true"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"planora"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"30m"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type MinIOConfig struct {
	Endpoint     string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey    string `env:"MINIO_ACCESS_KEY"`
	SecretKey    string `env:"MINIO_SECRET_KEY"`
	UseSSL       bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region       string `env:"MINIO_REGION"`
	AvatarBucket string `env:"MINIO_AVATAR_BUCKET" envDefault:"planora-avatars"`
}

type JWTConfig struct {
	SecretKey string        `env:"JWT_SECRET_KEY"`
	Issuer    string        `env:"JWT_ISSUER" envDefault:"planora-api"`
	TTL       time.Duration `env:"JWT_TTL" envDefault:"24h"`
	Leeway    time.Duration `env:"JWT_LEEWAY" envDefault:"30s"`
}

type DiscordConfig struct {
	ReportBugWebhookID    string `env:"DISCORD_REPORT_BUG_WEBHOOK_ID"`
	ReportBugWebhookToken string `env:"DISCORD_REPORT_BUG_WEBHOOK_TOKEN"`
}

type EncrypterConfig struct {
	// Key must be 16, 24 or 32 bytes, it selects the AES variant.
	Key string `env:"ENCRYPTER_KEY"`
}

// validate catches settings that would otherwise only fail deep at
// runtime, so a misconfigured process dies at startup instead.
func (c *Config) validate() error {
	if len(c.JWT.SecretKey) < 32 {
		return errors.New("config: JWT_SECRET_KEY must be at least 32 bytes")
	}

	switch len(c.Encrypter.Key) {
	case 16, 24, 32:
	default:
		return fmt.Errorf("config: ENCRYPTER_KEY must be 16, 24 or 32 bytes, got %d", len(c.Encrypter.Key))
	}

	return nil
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
