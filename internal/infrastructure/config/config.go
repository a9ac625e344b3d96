package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// ServiceURL is the base URL of the remote digital-twin service,
	// including the /api prefix.
	ServiceURL      string        `env:"TWIN_SERVICE_URL, default=http://localhost:5000/api"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT,     default=10s"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL, default=5m"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
