package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process configuration. It is built once in main and
// handed to each component at construction; nothing reads the environment
// after startup.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT       JWTConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
}

type JWTConfig struct {
	// Secret has no default: the process refuses to start without one.
	Secret     string `env:"JWT_SECRET, required"`
	Algorithm  string `env:"JWT_ALGORITHM, default=HS256"`
	TTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=60"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=order_management"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig bounds register/login attempts per client address.
type RateLimitConfig struct {
	Requests      int `env:"RATE_LIMIT_REQUESTS,       default=10"`
	WindowSeconds int `env:"RATE_LIMIT_WINDOW_SECONDS, default=60"`
}

// AdminConfig optionally seeds a bootstrap admin account at startup. Both
// fields empty disables seeding.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
