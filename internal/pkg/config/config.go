package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Throttle ThrottleConfig
}

// JWTConfig is the token-signing surface. The secret has no default on
// purpose: it must come from the environment or a secret store, never the
// binary.
type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET, required"`
	Issuer   string        `env:"JWT_ISSUER,   default=http://localhost:8080"`
	Audience string        `env:"JWT_AUDIENCE, default=http://localhost:8080"`
	TTL      time.Duration `env:"TOKEN_TTL,    default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=identity"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	From     string `env:"SMTP_FROM, default=no-reply@streamvault.io"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
}

type ThrottleConfig struct {
	MaxFailures int           `env:"LOGIN_MAX_FAILURES, default=10"`
	Window      time.Duration `env:"LOGIN_FAILURE_WINDOW, default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
