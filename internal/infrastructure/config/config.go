package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	TokenTTL  string `env:"TOKEN_TTL, default=24h"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	MySQL     MySQLConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type MySQLConfig struct {
	DSN string `env:"MYSQL_DSN, default=root@tcp(localhost:3306)/blog?charset=utf8mb4&parseTime=true&loc=UTC"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type RateLimitConfig struct {
	Enabled bool `env:"RATE_LIMIT_ENABLED,  default=true"`
	Limit   int  `env:"RATE_LIMIT_REQUESTS, default=60"`
	Window  int  `env:"RATE_LIMIT_WINDOW_S, default=60"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
