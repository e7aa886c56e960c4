package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   string `env:"PORT" envDefault:"8081"`

	// Catalog API
	CatalogAPIURL string `env:"CATALOG_API_URL" envDefault:"https://apis.ccbp.in"`

	// Cookies
	TokenCookieName   string        `env:"JWT_COOKIE_NAME" envDefault:"jwt_token"`
	SessionCookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"storefront_session"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// Redis is optional; without it sessions live in memory only and the API is not rate limited.
	RedisURL        string        `env:"REDIS_URL"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`

	LoggerLevel  string `env:"LOGGER_LEVEL" envDefault:"info"`
	LoggerAsJSON bool   `env:"LOGGER_AS_JSON" envDefault:"false"`
}

// Load reads an optional .env file and parses the environment.
func Load(path ...string) (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: load .env: %w", op, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("%s: SESSION_TTL must be positive", op)
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) Address() string {
	return ":" + c.Port
}

// WithTimeout returns a context with a 5s timeout for Redis round trips
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
