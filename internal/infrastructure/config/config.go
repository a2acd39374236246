package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Strapi  StrapiConfig
	Session SessionConfig
	Redis   RedisConfig
}

type StrapiConfig struct {
	// URL is the backend host; the /api prefix is appended by the client.
	URL string `env:"STRAPI_URL, default=http://localhost:1337"`
}

type SessionConfig struct {
	// Backend selects the credential store: redis, file, or memory.
	Backend    string `env:"SESSION_BACKEND, default=memory"`
	Dir        string `env:"SESSION_DIR"`
	TTLHours   int    `env:"SESSION_TTL_HOURS, default=24"`
	CookieName string `env:"SESSION_COOKIE,    default=karagul_sid"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
