package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs staff tokens, CustomerJWTSecret signs customer
	// tokens. Both are mandatory so a misconfigured deployment fails at
	// startup instead of issuing unverifiable tokens.
	JWTSecret         string `env:"JWT_SECRET, required"`
	CustomerJWTSecret string `env:"CUSTOMER_JWT_SECRET, required"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Limiter LimiterConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type LimiterConfig struct {
	MaxFailures   int `env:"LOGIN_MAX_FAILURES,   default=5"`
	WindowMinutes int `env:"LOGIN_WINDOW_MINUTES, default=15"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
